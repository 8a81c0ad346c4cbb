package trace

import "time"

// Event is one binding or click event. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// PassID identifies the binding pass (UUID). Click events carry the id of
	// the pass that registered the listener.
	PassID string `cbor:"2,keyasint"`

	// Phase tells binding events from click events.
	Phase Phase `cbor:"3,keyasint"`

	// Owner is the owner's dynamic type.
	Owner string `cbor:"4,keyasint"`

	// Kind is the kind of annotated element: "type", "field" or "method".
	Kind string `cbor:"5,keyasint"`

	// Member is the field or method name, or the type name for content.
	Member string `cbor:"6,keyasint,omitempty"`

	// ElementID is the annotation's identifier.
	ElementID int `cbor:"7,keyasint"`

	// Outcome is the binding outcome, e.g. "bound" or "not-found". Click
	// events use "invocation-failed".
	Outcome string `cbor:"8,keyasint"`

	// Error is the failure message, if any.
	Error string `cbor:"9,keyasint,omitempty"`
}

// Phase distinguishes events recorded while binding from events recorded
// when a bound listener runs.
type Phase uint8

const (
	// PhaseBind is a binding pass.
	PhaseBind Phase = 0
	// PhaseClick is a click dispatched to a bound method.
	PhaseClick Phase = 1
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBind:
		return "BIND"
	case PhaseClick:
		return "CLICK"
	default:
		return "UNKNOWN"
	}
}

// OutcomeInvocationFailed is the outcome of click events whose method
// panicked or returned an error.
const OutcomeInvocationFailed = "invocation-failed"
