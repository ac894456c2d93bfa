package core

// Firmware defaults
const (
	LEDPin      GPIOPin = 12  // PD12, green LED on STM32F4-Discovery
	BlinkPeriod uint32  = 500 // Ticks between toggles
)

// LEDState is the last commanded state of the LED.
type LEDState uint8

const (
	LEDOff LEDState = iota
	LEDOn
)

func (s LEDState) String() string {
	if s == LEDOn {
		return "on"
	}
	return "off"
}

// Blinker toggles one pin at a fixed period against a tick counter.
//
// The tick counter is written only by Tick, from the timer interrupt. Everything
// else is owned by the main loop, which calls Step without sleeping. Deadlines
// advance by exactly one period per toggle, so a late check does not shift the
// phase of later toggles.
type Blinker struct {
	ticks   TickCounter
	out     GPIODriver
	pin     GPIOPin
	period  uint32
	next    uint32
	state   LEDState
	toggles uint32

	// Trace, if set, records every toggle
	Trace *TimingRing
}

// NewBlinker returns a blinker driving pin through out every period ticks.
func NewBlinker(out GPIODriver, pin GPIOPin, period uint32) *Blinker {
	return &Blinker{
		out:    out,
		pin:    pin,
		period: period,
	}
}

// Init configures the pin as an output and drives the LED off.
func (b *Blinker) Init() error {
	if err := b.out.ConfigureOutput(b.pin); err != nil {
		return err
	}
	if err := b.out.SetPin(b.pin, false); err != nil {
		return err
	}
	b.state = LEDOff
	return nil
}

// Start arms the first deadline one period from now.
func (b *Blinker) Start() {
	now := b.Now()
	b.next = now + b.period
	if b.Trace != nil {
		b.Trace.Record(EvtStart, now, b.next, 0)
	}
}

// Tick advances the tick counter. This is the whole interrupt handler.
func (b *Blinker) Tick() {
	b.ticks.Increment()
}

// Now returns the current tick count.
func (b *Blinker) Now() uint32 {
	return b.ticks.Load()
}

// Step runs one main-loop iteration. If the deadline has been reached it
// performs exactly one toggle and advances the deadline by one period.
// A driver error leaves state and deadline untouched so the next Step retries.
func (b *Blinker) Step() (bool, error) {
	now := b.Now()
	if !TimeReached(now, b.next) {
		return false, nil
	}

	next := LEDOn
	if b.state == LEDOn {
		next = LEDOff
	}
	if err := b.out.SetPin(b.pin, next == LEDOn); err != nil {
		if b.Trace != nil {
			b.Trace.Record(EvtDriverErr, now, b.next, now-b.next)
		}
		return false, err
	}
	b.state = next
	b.toggles++

	if b.Trace != nil {
		evt := uint8(EvtToggleOff)
		if next == LEDOn {
			evt = EvtToggleOn
		}
		b.Trace.Record(evt, now, b.next, now-b.next)
	}
	if debugEnabled {
		DebugAsync("led " + next.String() + " tick=" + utoa(now) + " deadline=" + utoa(b.next))
	}

	b.next += b.period
	return true, nil
}

// State returns the last commanded LED state.
func (b *Blinker) State() LEDState {
	return b.state
}

// Deadline returns the tick at which the next toggle is due.
func (b *Blinker) Deadline() uint32 {
	return b.next
}

// Period returns the toggle period in ticks.
func (b *Blinker) Period() uint32 {
	return b.period
}

// Toggles returns the number of toggles performed since creation.
func (b *Blinker) Toggles() uint32 {
	return b.toggles
}

// SetTime seeds the tick counter, e.g. to exercise wraparound. Must not be called
// while a tick source is running.
func (b *Blinker) SetTime(ticks uint32) {
	b.ticks.Store(ticks)
}
