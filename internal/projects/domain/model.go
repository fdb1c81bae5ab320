package domain

import "time"

// State is the lifecycle state of a project.
type State string

const (
	StatePlanned    State = "PLANNED"
	StateInProgress State = "IN_PROGRESS"
	StateCompleted  State = "COMPLETED"
	StateCancelled  State = "CANCELLED"
)

// States lists every valid lifecycle state.
var States = []State{StatePlanned, StateInProgress, StateCompleted, StateCancelled}

// ParseState converts a wire value into a State. Unknown values return
// ErrInvalidState so the HTTP layer can answer 400.
func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePlanned, StateInProgress, StateCompleted, StateCancelled:
		return State(s), nil
	}
	return "", &InvalidStateError{Value: s}
}

// Valid reports whether the state is a known enum member.
func (s State) Valid() bool {
	_, err := ParseState(string(s))
	return err == nil
}

// Project is the single managed entity. It is storage-agnostic and shared
// across repository, service and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	State       State     `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
