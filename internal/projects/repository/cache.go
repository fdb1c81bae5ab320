package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
)

const projectKeyPrefix = "proj:project:" // proj:project:{id}

// CachedRepository is a read-through Redis cache in front of another
// Repository. GetByID is served from the cache when possible; every write
// keeps the cache consistent. Cache failures are logged and degrade to the
// inner repository, they never reach callers.
type CachedRepository struct {
	inner  Repository
	client *redis.Client
	log    zerolog.Logger
	ttl    time.Duration
}

func NewCachedRepository(inner Repository, client *redis.Client, log zerolog.Logger, ttl time.Duration) *CachedRepository {
	return &CachedRepository{inner: inner, client: client, log: log, ttl: ttl}
}

func (r *CachedRepository) key(id string) string {
	return projectKeyPrefix + id
}

func (r *CachedRepository) store(ctx context.Context, p *domain.Project) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.key(p.ID), data, r.ttl).Err(); err != nil {
		r.log.Warn().Err(err).Str("project_id", p.ID).Msg("cache set failed")
	}
}

func (r *CachedRepository) invalidate(ctx context.Context, id string) {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.log.Warn().Err(err).Str("project_id", id).Msg("cache invalidation failed")
	}
}

func (r *CachedRepository) Create(ctx context.Context, name string, description *string, state domain.State) (*domain.Project, error) {
	p, err := r.inner.Create(ctx, name, description, state)
	if err != nil {
		return nil, err
	}
	r.store(ctx, p)
	return p, nil
}

func (r *CachedRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == nil {
		var p domain.Project
		if err := json.Unmarshal(data, &p); err == nil {
			return &p, nil
		}
		// Unreadable entry: drop it and fall through to the store.
		r.invalidate(ctx, id)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn().Err(err).Str("project_id", id).Msg("cache get failed")
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil || p == nil {
		return p, err
	}
	r.store(ctx, p)
	return p, nil
}

func (r *CachedRepository) List(ctx context.Context, skip, limit int, state *domain.State) ([]domain.Project, error) {
	return r.inner.List(ctx, skip, limit, state)
}

func (r *CachedRepository) Update(ctx context.Context, id string, name, description *string, state *domain.State) (*domain.Project, error) {
	p, err := r.inner.Update(ctx, id, name, description, state)
	if err != nil {
		return nil, err
	}
	if p == nil {
		r.invalidate(ctx, id)
		return nil, nil
	}
	r.store(ctx, p)
	return p, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := r.inner.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	r.invalidate(ctx, id)
	return ok, nil
}

func (r *CachedRepository) Count(ctx context.Context, state *domain.State) (int64, error) {
	return r.inner.Count(ctx, state)
}
