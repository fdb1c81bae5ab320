package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
)

func newService(t *testing.T) *ProjectService {
	t.Helper()
	return NewProjectService(repository.NewMemoryRepository())
}

func strp(s string) *string { return &s }

func statep(s domain.State) *domain.State { return &s }

func TestCreate_DefaultsToPlanned(t *testing.T) {
	svc := newService(t)

	p, err := svc.Create(context.Background(), "alpha", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "alpha", p.Name)
	assert.Nil(t, p.Description)
	assert.Equal(t, domain.StatePlanned, p.State)
}

func TestCreate_RejectsInvalidName(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), "ab", nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(context.Background(), strings.Repeat("a", 101), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreate_RejectsOverlongDescription(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), "alpha", strp(strings.Repeat("d", 501)), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidDescription)
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alpha", nil, nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "alpha", nil, nil)

	var nameExists *domain.NameExistsError
	require.ErrorAs(t, err, &nameExists)
	assert.Equal(t, "alpha", nameExists.Name)

	total, err := svc.repo.Count(ctx, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestGetByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alpha", strp("first project"), nil)
	require.NoError(t, err)

	t.Run("existing id returns matching fields", func(t *testing.T) {
		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "alpha", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, "first project", *got.Description)
	})

	t.Run("unknown id raises not-found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "missing")

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.ID)
	})
}

func TestList_NewestFirstWithTotal(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, name := range []string{"proj-a", "proj-b", "proj-c", "proj-d"} {
		_, err := svc.Create(ctx, name, nil, nil)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 0, 2, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)
	assert.Equal(t, 0, page.Skip)
	assert.Equal(t, 2, page.Limit)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "proj-d", page.Items[0].Name)
	assert.Equal(t, "proj-c", page.Items[1].Name)
}

func TestList_DefaultsAndStateFilter(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "planned", nil, nil)
	require.NoError(t, err)
	started, err := svc.Create(ctx, "started", nil, nil)
	require.NoError(t, err)
	_, err = svc.Update(ctx, started.ID, UpdatePatch{State: statep(domain.StateInProgress)})
	require.NoError(t, err)

	page, err := svc.List(ctx, -5, 0, statep(domain.StateInProgress))
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultSkip, page.Skip)
	assert.Equal(t, repository.DefaultLimit, page.Limit)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "started", page.Items[0].Name)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alpha", strp("old"), nil)
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdatePatch{Description: strp("new")})
	require.NoError(t, err)
	assert.Equal(t, "alpha", updated.Name)
	assert.Equal(t, domain.StatePlanned, updated.State)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "new", *updated.Description)
}

func TestUpdate_EnforcesTransitionTable(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alpha", nil, nil)
	require.NoError(t, err)

	t.Run("planned cannot jump to completed", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, UpdatePatch{State: statep(domain.StateCompleted)})

		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, domain.StatePlanned, invalid.From)
		assert.Equal(t, domain.StateCompleted, invalid.To)
	})

	t.Run("legal chain planned -> in_progress -> completed", func(t *testing.T) {
		p, err := svc.Update(ctx, created.ID, UpdatePatch{State: statep(domain.StateInProgress)})
		require.NoError(t, err)
		assert.Equal(t, domain.StateInProgress, p.State)

		p, err = svc.Update(ctx, created.ID, UpdatePatch{State: statep(domain.StateCompleted)})
		require.NoError(t, err)
		assert.Equal(t, domain.StateCompleted, p.State)
	})

	t.Run("self transition rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, UpdatePatch{State: statep(domain.StateCompleted)})

		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	})
}

func TestUpdate_UnknownID(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), "missing", UpdatePatch{Name: strp("renamed")})

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestUpdate_NameConflict(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "alpha", nil, nil)
	require.NoError(t, err)
	other, err := svc.Create(ctx, "beta", nil, nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.ID, UpdatePatch{Name: strp("alpha")})

	var nameExists *domain.NameExistsError
	require.ErrorAs(t, err, &nameExists)
}

func TestDelete_SecondCallNotFound(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "alpha", nil, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, created.ID, notFound.ID)
}
