package domain

// allowedTransitions maps each state to the states it may move to.
// Completed projects can be reopened, cancelled projects restarted.
var allowedTransitions = map[State][]State{
	StatePlanned:    {StateInProgress, StateCancelled},
	StateInProgress: {StateCompleted, StateCancelled},
	StateCompleted:  {StateInProgress},
	StateCancelled:  {StatePlanned},
}

// CanTransition reports whether moving from one state to another is allowed.
// Self-transitions are not in the table and therefore rejected.
func CanTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the states reachable from the given state.
func AllowedTransitions(from State) []State {
	next, ok := allowedTransitions[from]
	if !ok {
		return nil
	}
	out := make([]State, len(next))
	copy(out, next)
	return out
}
