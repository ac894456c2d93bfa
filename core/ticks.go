package core

// SyntheticTicks drives a Blinker deterministically in place of the SysTick
// interrupt: each tick is followed by PollsPerTick loop iterations.
type SyntheticTicks struct {
	Blinker      *Blinker
	PollsPerTick int
}

// NewSyntheticTicks returns a driver polling b once per tick.
func NewSyntheticTicks(b *Blinker) *SyntheticTicks {
	return &SyntheticTicks{Blinker: b, PollsPerTick: 1}
}

// Advance delivers n ticks and returns how many toggles they produced.
// It stops at the first driver error.
func (s *SyntheticTicks) Advance(n uint32) (int, error) {
	toggles := 0
	for i := uint32(0); i < n; i++ {
		s.Blinker.Tick()
		for j := 0; j < s.PollsPerTick; j++ {
			toggled, err := s.Blinker.Step()
			if err != nil {
				return toggles, err
			}
			if toggled {
				toggles++
			}
		}
	}
	return toggles, nil
}
