package service

import (
	"context"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
)

// UpdatePatch carries the fields of a partial update. Nil means "leave as is".
type UpdatePatch struct {
	Name        *string
	Description *string
	State       *domain.State
}

// Page is a paged list result. Total counts every matching row, not just the
// returned slice.
type Page struct {
	Total int64            `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
	Items []domain.Project `json:"items"`
}

// ProjectService is the single caller-facing surface above the repository.
type ProjectService struct {
	repo repository.Repository
}

func NewProjectService(repo repository.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create validates the payload and inserts a new project. State defaults to
// PLANNED when not provided.
func (s *ProjectService) Create(ctx context.Context, name string, description *string, state *domain.State) (*domain.Project, error) {
	if !domain.ValidName(name) {
		return nil, domain.ErrInvalidName
	}
	if !domain.ValidDescription(description) {
		return nil, domain.ErrInvalidDescription
	}

	st := domain.StatePlanned
	if state != nil {
		st = *state
	}
	if !st.Valid() {
		return nil, &domain.InvalidStateError{Value: string(st)}
	}

	return s.repo.Create(ctx, name, description, st)
}

// GetByID returns the project or *domain.NotFoundError when absent.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return p, nil
}

// List fetches a page and the total matching count.
func (s *ProjectService) List(ctx context.Context, skip, limit int, state *domain.State) (*Page, error) {
	if skip < 0 {
		skip = repository.DefaultSkip
	}
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	items, err := s.repo.List(ctx, skip, limit, state)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, state)
	if err != nil {
		return nil, err
	}

	return &Page{Total: total, Skip: skip, Limit: limit, Items: items}, nil
}

// Update applies a partial update. A state change is checked against the
// transition table before it reaches the store. The store update itself is a
// single conditional statement, so a project deleted between the transition
// check and the write surfaces as a clean not-found.
func (s *ProjectService) Update(ctx context.Context, id string, patch UpdatePatch) (*domain.Project, error) {
	if patch.Name != nil && !domain.ValidName(*patch.Name) {
		return nil, domain.ErrInvalidName
	}
	if !domain.ValidDescription(patch.Description) {
		return nil, domain.ErrInvalidDescription
	}

	if patch.State != nil {
		if !patch.State.Valid() {
			return nil, &domain.InvalidStateError{Value: string(*patch.State)}
		}

		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, &domain.NotFoundError{ID: id}
		}
		if !domain.CanTransition(current.State, *patch.State) {
			return nil, &domain.InvalidTransitionError{From: current.State, To: *patch.State}
		}
	}

	p, err := s.repo.Update(ctx, id, patch.Name, patch.Description, patch.State)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return p, nil
}

// Delete removes a project; a miss is *domain.NotFoundError.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}
