// Package ticker provides a wall-clock tick source standing in for the SysTick
// interrupt when the blinker runs on a host.
package ticker

import (
	"context"
	"errors"
	"time"
)

// Source delivers one tick per Interval.
type Source struct {
	Interval time.Duration
}

// New returns a source ticking rate times per second.
func New(rate uint32) *Source {
	return &Source{Interval: time.Second / time.Duration(rate)}
}

// Run calls tick once per interval until ctx is done, then returns ctx.Err().
// Ticks the host could not deliver in time are dropped, not replayed.
func (s *Source) Run(ctx context.Context, tick func()) error {
	if s.Interval <= 0 {
		return errors.New("ticker: interval must be positive")
	}

	t := time.NewTicker(s.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick()
		}
	}
}
