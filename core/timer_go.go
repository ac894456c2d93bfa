//go:build !tinygo

package core

import "sync/atomic"

// On host the tick source runs on its own goroutine.

func incrementTicks(p *uint32) {
	atomic.AddUint32(p, 1)
}

func loadTicks(p *uint32) uint32 {
	return atomic.LoadUint32(p)
}

func storeTicks(p *uint32, ticks uint32) {
	atomic.StoreUint32(p, ticks)
}
