package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
)

// Pagination defaults for List.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Repository abstracts persistence of projects. Absence is not an error at
// this layer: GetByID and Update return (nil, nil) for an unknown ID, Delete
// returns false. The service layer decides what absence means.
type Repository interface {
	// Create inserts a new project. Colliding names return *domain.NameExistsError.
	Create(ctx context.Context, name string, description *string, state domain.State) (*domain.Project, error)

	// GetByID returns the project or (nil, nil) when the ID is unknown.
	GetByID(ctx context.Context, id string) (*domain.Project, error)

	// List returns a page ordered by creation time descending, optionally
	// filtered by state.
	List(ctx context.Context, skip, limit int, state *domain.State) ([]domain.Project, error)

	// Update applies the non-nil fields in a single statement and returns the
	// updated row, or (nil, nil) when the ID is unknown. Colliding names
	// return *domain.NameExistsError.
	Update(ctx context.Context, id string, name, description *string, state *domain.State) (*domain.Project, error)

	// Delete removes the project and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// Count returns the number of projects, optionally filtered by state.
	Count(ctx context.Context, state *domain.State) (int64, error)
}

// QueryError wraps a failed store operation with the elapsed wall-clock time.
type QueryError struct {
	Op      string
	Elapsed time.Duration
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed after %s: %v", e.Op, e.Elapsed, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// ConnectionError marks a store that could not be reached at all, as opposed
// to a query that ran and failed. The HTTP layer answers 503 for these.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store unreachable during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
