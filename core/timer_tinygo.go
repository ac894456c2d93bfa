//go:build tinygo

package core

import "runtime/volatile"

// incrementTicks is called from the SysTick handler, the only writer, so a
// volatile load and store is enough on a single core.
func incrementTicks(p *uint32) {
	volatile.StoreUint32(p, volatile.LoadUint32(p)+1)
}

func loadTicks(p *uint32) uint32 {
	return volatile.LoadUint32(p)
}

func storeTicks(p *uint32, ticks uint32) {
	volatile.StoreUint32(p, ticks)
}
