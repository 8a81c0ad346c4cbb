package trace

import "sync"

// Recorder receives trace events. Implementations must be safe for
// concurrent use: click events arrive on whatever goroutine dispatches the
// click.
type Recorder interface {
	Record(event Event)
}

// NoopRecorder discards all events. It is usable as a zero value.
type NoopRecorder struct{}

// Record discards the event.
func (NoopRecorder) Record(Event) {}

// MultiRecorder sends events to several recorders in order.
type MultiRecorder struct {
	recorders []Recorder
}

// NewMultiRecorder returns a recorder that forwards to all given recorders.
// Nil recorders are skipped.
func NewMultiRecorder(recorders ...Recorder) *MultiRecorder {
	m := &MultiRecorder{}
	for _, r := range recorders {
		if r != nil {
			m.recorders = append(m.recorders, r)
		}
	}
	return m
}

// Record forwards the event to every recorder.
func (m *MultiRecorder) Record(event Event) {
	for _, r := range m.recorders {
		r.Record(event)
	}
}

// Collector keeps events in memory.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Record appends the event.
func (c *Collector) Record(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

// Events returns a copy of the events recorded so far.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := make([]Event, len(c.events))
	copy(events, c.events)
	return events
}

// Reset drops all recorded events.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = nil
}

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*MultiRecorder)(nil)
	_ Recorder = (*Collector)(nil)
)
