package classbind

// State is the binding lifecycle state. Transitions are driven entirely by
// the external scheduler: configure moves Uninitialized to Active, teardown
// is terminal.
type State uint8

const (
	StateUninitialized State = iota // No spec or initial classes applied yet
	StateActive                     // Configured at least once
	StateTornDown                   // Teardown ran; no further hooks fire
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateActive:
		return "Active"
	case StateTornDown:
		return "TornDown"
	default:
		return "Unknown"
	}
}
