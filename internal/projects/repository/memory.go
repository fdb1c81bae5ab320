package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
)

// MemoryRepository is a mutex-guarded in-memory Repository used by service
// and handler tests. Ordering mirrors the store: newest creation first.
type MemoryRepository struct {
	mu      sync.RWMutex
	items   map[string]*memoryEntry
	nextSeq uint64
}

type memoryEntry struct {
	project domain.Project
	seq     uint64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*memoryEntry)}
}

func clone(p domain.Project) *domain.Project {
	out := p
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	return &out
}

func (r *MemoryRepository) Create(ctx context.Context, name string, description *string, state domain.State) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.items {
		if e.project.Name == name {
			return nil, &domain.NameExistsError{Name: name}
		}
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:        uuid.NewString(),
		Name:      name,
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if description != nil {
		d := *description
		p.Description = &d
	}

	r.nextSeq++
	r.items[p.ID] = &memoryEntry{project: p, seq: r.nextSeq}
	return clone(p), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return clone(e.project), nil
}

func (r *MemoryRepository) List(ctx context.Context, skip, limit int, state *domain.State) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*memoryEntry, 0, len(r.items))
	for _, e := range r.items {
		if state != nil && e.project.State != *state {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })

	out := make([]domain.Project, 0, limit)
	for i := skip; i < len(entries) && len(out) < limit; i++ {
		out = append(out, *clone(entries[i].project))
	}
	return out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, name, description *string, state *domain.State) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}

	if name != nil {
		for otherID, other := range r.items {
			if otherID != id && other.project.Name == *name {
				return nil, &domain.NameExistsError{Name: *name}
			}
		}
		e.project.Name = *name
	}
	if description != nil {
		d := *description
		e.project.Description = &d
	}
	if state != nil {
		e.project.State = *state
	}
	e.project.UpdatedAt = time.Now().UTC()

	return clone(e.project), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryRepository) Count(ctx context.Context, state *domain.State) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, e := range r.items {
		if state != nil && e.project.State != *state {
			continue
		}
		total++
	}
	return total, nil
}
