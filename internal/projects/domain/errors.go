package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName        = errors.New("project name must be between 3 and 100 characters")
	ErrInvalidDescription = errors.New("project description must be at most 500 characters")
)

// NotFoundError is returned when no project exists for the given ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("project with id %q not found", e.ID)
}

// NameExistsError is returned when a create or rename collides with an
// existing project name.
type NameExistsError struct {
	Name string
}

func (e *NameExistsError) Error() string {
	return fmt.Sprintf("project with name %q already exists", e.Name)
}

// InvalidStateError is returned when a value is not a member of the state enum.
type InvalidStateError struct {
	Value string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid project state %q", e.Value)
}

// InvalidTransitionError is returned when a state change is not in the
// transition table.
type InvalidTransitionError struct {
	From State
	To   State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}
