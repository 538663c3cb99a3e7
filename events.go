package memocache

import "time"

// EventType identifies what happened during one adapter operation.
type EventType string

const (
	EventInitialized     EventType = "INITIALIZED"
	EventReadStart       EventType = "READ_START"
	EventReadDone        EventType = "READ_DONE"
	EventReadError       EventType = "READ_ERROR"
	EventReadKeyNotFound EventType = "READ_KEY_NOT_FOUND"
	EventReadTimeout     EventType = "READ_TIMEOUT"
	EventParseFailed     EventType = "JSON_PARSING_FAILED"
	EventWriteStart      EventType = "WRITE_START"
	EventWriteDone       EventType = "WRITE_DONE"
	EventWriteError      EventType = "WRITE_ERROR"
	EventWriteFailed     EventType = "WRITE_FAILED"
	EventEncodeFailed    EventType = "JSON_STRINGIFY_FAILED"
)

// Failure reports whether t describes a failed operation. Sinks use it to
// pick a log level; READ_KEY_NOT_FOUND is a plain miss, not a failure.
func (t EventType) Failure() bool {
	switch t {
	case EventReadError, EventReadTimeout, EventParseFailed,
		EventWriteError, EventWriteFailed, EventEncodeFailed:
		return true
	}
	return false
}

// Timers carries per-operation durations: Network covers the transport call
// only, Total the whole operation from entry to settlement.
type Timers struct {
	Network time.Duration
	Total   time.Duration
}

// Event is delivered to the EventSink once per operation outcome (plus one
// START per operation and one INITIALIZED per pooled transport).
// Events never affect control flow.
type Event struct {
	Type          EventType
	Key           string // logical key; empty for INITIALIZED
	NormalizedKey string
	Timers        Timers
	Data          []byte        // serialized payload, when one exists
	TTL           time.Duration // writes only
	Err           error
}

// EventSink receives adapter events. Implementations must be safe for
// concurrent use and must be cheap: Emit is called from operation goroutines.
// Wrap slow sinks with sink/async.
type EventSink interface {
	Emit(Event)
}

// NopSink discards all events. Used when Options.Sink is nil.
type NopSink struct{}

func (NopSink) Emit(Event) {}
