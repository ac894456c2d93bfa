package core

import (
	"errors"
	"strings"
	"testing"
)

// flakyDriver fails SetPin while err is set.
type flakyDriver struct {
	err    error
	values []bool
}

func (d *flakyDriver) ConfigureOutput(pin GPIOPin) error {
	return nil
}

func (d *flakyDriver) SetPin(pin GPIOPin, value bool) error {
	if d.err != nil {
		return d.err
	}
	d.values = append(d.values, value)
	return nil
}

func newSimBlinker(t *testing.T, start uint32) (*Board, *Blinker) {
	t.Helper()
	board := NewSimBoard()
	b := NewBlinker(board.LEDPort(), LEDPin, BlinkPeriod)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	b.SetTime(start)
	b.Start()
	return board, b
}

func TestBlinkerFirstPeriod(t *testing.T) {
	board, b := newSimBlinker(t, 0)

	if b.State() != LEDOff {
		t.Fatalf("expected LED off after init, got %s", b.State())
	}
	if got := board.GPIOD.BSRR.Get(); got != 1<<(12+16) {
		t.Errorf("init: expected reset write 0x%08X, got 0x%08X", uint32(1<<28), got)
	}
	if b.Deadline() != 500 {
		t.Fatalf("expected deadline 500, got %d", b.Deadline())
	}

	toggles, err := NewSyntheticTicks(b).Advance(500)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if toggles != 1 {
		t.Errorf("expected exactly 1 toggle, got %d", toggles)
	}
	if b.State() != LEDOn {
		t.Errorf("expected LED on, got %s", b.State())
	}
	if b.Deadline() != 1000 {
		t.Errorf("expected deadline 1000, got %d", b.Deadline())
	}
	if got := board.GPIOD.BSRR.Get(); got != 1<<12 {
		t.Errorf("expected set write 0x%08X, got 0x%08X", uint32(1<<12), got)
	}
}

func TestBlinkerNoToggleBeforeDeadline(t *testing.T) {
	_, b := newSimBlinker(t, 0)

	toggles, err := NewSyntheticTicks(b).Advance(499)
	if err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if toggles != 0 || b.State() != LEDOff || b.Deadline() != 500 {
		t.Errorf("expected no change after 499 ticks, got toggles=%d state=%s deadline=%d",
			toggles, b.State(), b.Deadline())
	}
}

func TestBlinkerAlternatesAndKeepsPhase(t *testing.T) {
	for _, polls := range []int{1, 2, 7} {
		_, b := newSimBlinker(t, 0)
		ticks := &SyntheticTicks{Blinker: b, PollsPerTick: polls}

		var states []LEDState
		var at []uint32
		for i := 0; i < 10*500; i++ {
			n, err := ticks.Advance(1)
			if err != nil {
				t.Fatalf("polls=%d: Advance failed: %v", polls, err)
			}
			if n > 1 {
				t.Fatalf("polls=%d: %d toggles in one tick", polls, n)
			}
			if n == 1 {
				states = append(states, b.State())
				at = append(at, b.Now())
			}
		}

		if len(states) != 10 {
			t.Fatalf("polls=%d: expected 10 toggles, got %d", polls, len(states))
		}
		for i, s := range states {
			expected := LEDOn
			if i%2 == 1 {
				expected = LEDOff
			}
			if s != expected {
				t.Errorf("polls=%d: toggle %d: expected %s, got %s", polls, i+1, expected, s)
			}
			if at[i] != uint32(i+1)*500 {
				t.Errorf("polls=%d: toggle %d at tick %d, expected %d", polls, i+1, at[i], (i+1)*500)
			}
		}
	}
}

func TestBlinkerWraparound(t *testing.T) {
	starts := []uint32{0xFFFFFFFF - 200, 0xFFFFFFFF - 499, 0xFFFFFFFF - 500, 0xFFFFFFFF}

	for _, start := range starts {
		_, b := newSimBlinker(t, start)
		ticks := NewSyntheticTicks(b)

		if b.Deadline() != start+500 {
			t.Fatalf("start 0x%08X: expected deadline 0x%08X, got 0x%08X", start, start+500, b.Deadline())
		}

		for n := uint32(1); n <= 3; n++ {
			toggles, err := ticks.Advance(499)
			if err != nil {
				t.Fatalf("Advance failed: %v", err)
			}
			if toggles != 0 {
				t.Errorf("start 0x%08X: toggle %d fired early at 0x%08X", start, n, b.Now())
			}

			toggles, err = ticks.Advance(1)
			if err != nil {
				t.Fatalf("Advance failed: %v", err)
			}
			if toggles != 1 {
				t.Errorf("start 0x%08X: toggle %d missing at 0x%08X", start, n, b.Now())
			}
			if b.Now() != start+n*500 {
				t.Errorf("start 0x%08X: toggle %d at 0x%08X, expected 0x%08X", start, n, b.Now(), start+n*500)
			}
		}
	}
}

func TestBlinkerLateCheckDoesNotDrift(t *testing.T) {
	_, b := newSimBlinker(t, 0)

	// Ticks arrive but the loop does not run
	ticks := &SyntheticTicks{Blinker: b, PollsPerTick: 0}
	if _, err := ticks.Advance(1200); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	// Each Step performs at most one toggle and advances by exactly one period
	expected := []struct {
		toggled  bool
		deadline uint32
	}{
		{true, 1000},
		{true, 1500},
		{false, 1500},
	}
	for i, e := range expected {
		toggled, err := b.Step()
		if err != nil {
			t.Fatalf("Step %d failed: %v", i, err)
		}
		if toggled != e.toggled || b.Deadline() != e.deadline {
			t.Errorf("Step %d: expected toggled=%v deadline=%d, got toggled=%v deadline=%d",
				i, e.toggled, e.deadline, toggled, b.Deadline())
		}
	}
	if b.State() != LEDOff || b.Toggles() != 2 {
		t.Errorf("expected LED off after 2 toggles, got %s after %d", b.State(), b.Toggles())
	}
}

func TestBlinkerDriverError(t *testing.T) {
	drv := &flakyDriver{}
	b := NewBlinker(drv, LEDPin, BlinkPeriod)
	b.Trace = new(TimingRing)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	b.Start()

	drv.err = errors.New("line busy")
	_, err := NewSyntheticTicks(b).Advance(500)
	if err == nil || err.Error() != "line busy" {
		t.Fatalf("expected driver error, got %v", err)
	}
	if b.State() != LEDOff || b.Deadline() != 500 || b.Toggles() != 0 {
		t.Errorf("failed write changed state: state=%s deadline=%d toggles=%d", b.State(), b.Deadline(), b.Toggles())
	}

	drv.err = nil
	toggled, err := b.Step()
	if err != nil || !toggled {
		t.Fatalf("expected retry to toggle, got toggled=%v err=%v", toggled, err)
	}
	if len(drv.values) != 2 || drv.values[0] || !drv.values[1] {
		t.Errorf("expected writes [false true], got %v", drv.values)
	}

	events := b.Trace.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 trace events, got %d", len(events))
	}
	if events[0].EventType != EvtStart || events[1].EventType != EvtDriverErr || events[2].EventType != EvtToggleOn {
		t.Errorf("unexpected trace: %+v", events)
	}
}

func TestBlinkerDebugOutput(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	defer func() {
		SetDebugEnabled(false)
		SetDebugWriter(func(string) {})
	}()

	_, b := newSimBlinker(t, 0)
	if _, err := NewSyntheticTicks(b).Advance(1000); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	expected := []string{
		"led on tick=500 deadline=500",
		"led off tick=1000 deadline=1000",
	}
	if strings.Join(lines, "\n") != strings.Join(expected, "\n") {
		t.Errorf("unexpected debug output:\n%s", strings.Join(lines, "\n"))
	}
}
