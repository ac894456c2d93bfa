package core

// TickCounter counts SysTick interrupts. It has a single writer (the interrupt
// handler) and a single reader (the main loop). The counter is one machine word,
// so loads are never torn, and it wraps on overflow.
type TickCounter struct {
	ticks uint32
}

// Increment advances the counter by one tick. Interrupt context only.
func (c *TickCounter) Increment() {
	incrementTicks(&c.ticks)
}

// Load returns the current tick count.
func (c *TickCounter) Load() uint32 {
	return loadTicks(&c.ticks)
}

// Store sets the tick count (boot seeding and tests). Not safe while the tick
// source is running.
func (c *TickCounter) Store(ticks uint32) {
	storeTicks(&c.ticks, ticks)
}

// TimeReached reports whether now is at or past deadline. The signed difference
// stays correct across counter wraparound as long as the two are within 2^31
// ticks of each other.
func TimeReached(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

// TimerFromMS converts milliseconds to ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * TickRate / 1000
}

// TimerToMS converts ticks to milliseconds
func TimerToMS(ticks uint32) uint32 {
	return ticks * 1000 / TickRate
}
