package probe

// State is the lifecycle position of a Client.
type State int32

// Client states.
const (
	StateConnecting State = iota
	StateOpen
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// canTransition reports whether moving from s to next is a legal step.
func (s State) canTransition(next State) bool {
	switch s {
	case StateConnecting:
		return next == StateOpen || next == StateClosed
	case StateOpen:
		return next == StateClosed
	default:
		return false
	}
}
