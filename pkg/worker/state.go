package worker

// State represents the lifecycle state of the worker loop.
type State int

const (
	// StateStopped is the terminal state. A worker is also Stopped before
	// Run is called; it never leaves Stopped once it returns there.
	StateStopped State = iota

	// StateRunning means the loop is reading, dispatching and responding.
	StateRunning
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}
