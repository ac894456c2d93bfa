package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a toggle for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Clock     uint32 // Tick count when the event was observed
	Deadline  uint32 // Deadline that triggered it
	Late      uint32 // Ticks between deadline and observation
}

// Event type codes
const (
	EvtStart     = 1 // Deadline armed
	EvtToggleOn  = 2 // LED switched on
	EvtToggleOff = 3 // LED switched off
	EvtDriverErr = 4 // Output driver rejected a write
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine.
// Call after SetDebugWriter.
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker(debugChan)
}

func debugOutputWorker(ch chan string) {
	for msg := range ch {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Blocks for as long as the writer does.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message without blocking the polling loop. Falls back
// to DebugPrintln when no async worker is running; drops the message if the
// queue is full.
func DebugAsync(msg string) {
	if !debugEnabled {
		return
	}
	if debugChan == nil {
		DebugPrintln(msg)
		return
	}
	select {
	case debugChan <- msg:
	default:
	}
}

// TimingRing keeps the most recent timing events. Recording never allocates.
type TimingRing struct {
	events [TimingRingSize]TimingEvent
	head   uint8 // Next write position
}

// Record captures an event, overwriting the oldest once full.
func (r *TimingRing) Record(eventType uint8, clock, deadline, late uint32) {
	idx := r.head
	r.events[idx] = TimingEvent{
		EventType: eventType,
		Clock:     clock,
		Deadline:  deadline,
		Late:      late,
	}
	r.head = (idx + 1) % TimingRingSize
}

// Events returns the recorded events, oldest first.
func (r *TimingRing) Events() []TimingEvent {
	out := make([]TimingEvent, 0, TimingRingSize)
	for i := uint8(0); i < TimingRingSize; i++ {
		evt := r.events[(r.head+i)%TimingRingSize]
		if evt.EventType == 0 {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// Clear empties the ring.
func (r *TimingRing) Clear() {
	*r = TimingRing{}
}

// Dump writes the ring through the debug writer, oldest first.
func (r *TimingRing) Dump() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range r.Events() {
		debugPrintln("[TIMING] " + eventName(evt.EventType) +
			" clock=" + utoa(evt.Clock) +
			" deadline=" + utoa(evt.Deadline) +
			" late=" + utoa(evt.Late))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

func eventName(eventType uint8) string {
	switch eventType {
	case EvtStart:
		return "START"
	case EvtToggleOn:
		return "LED_ON"
	case EvtToggleOff:
		return "LED_OFF"
	case EvtDriverErr:
		return "DRIVER_ERR!"
	default:
		return "UNKNOWN"
	}
}
