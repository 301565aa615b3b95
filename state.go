package relay

// State represents the health of a reload session.
type State int32

const (
	// StateHealthy indicates the held value reflects the most recent
	// successful load. Sessions start healthy because construction performs
	// the initial load.
	StateHealthy State = iota

	// StateDegraded indicates the last reload attempt failed. The previously
	// loaded value remains available and the session keeps watching.
	StateDegraded
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}
