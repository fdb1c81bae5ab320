package repository

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
)

const uniqueViolation = "23505"

// isConnectionError distinguishes "could not reach the store" from "the
// query ran and failed": failed dials and dead sockets, not SQL errors.
func isConnectionError(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// PostgresRepository persists projects in Postgres through a pgx pool.
type PostgresRepository struct {
	db       *pgxpool.Pool
	log      zerolog.Logger
	slowWarn time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, log zerolog.Logger, slowWarn time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, log: log, slowWarn: slowWarn}
}

// observe closes out a store call: slow-but-successful queries are logged as
// a warning only, domain conditions and cancellation pass through untouched,
// anything else is wrapped with the elapsed time.
func (r *PostgresRepository) observe(op string, start time.Time, err error) error {
	elapsed := time.Since(start)

	if err == nil {
		if r.slowWarn > 0 && elapsed > r.slowWarn {
			r.log.Warn().
				Str("op", op).
				Dur("elapsed", elapsed).
				Dur("threshold", r.slowWarn).
				Msg("slow query")
		}
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var nameExists *domain.NameExistsError
	if errors.As(err, &nameExists) {
		return err
	}

	if isConnectionError(err) {
		r.log.Error().Str("op", op).Dur("elapsed", elapsed).Err(err).Msg("store unreachable")
		return &ConnectionError{Op: op, Err: err}
	}

	qerr := &QueryError{Op: op, Elapsed: elapsed, Err: err}
	r.log.Error().Str("op", op).Dur("elapsed", elapsed).Err(err).Msg("query failed")
	return qerr
}

func (r *PostgresRepository) Create(ctx context.Context, name string, description *string, state domain.State) (*domain.Project, error) {
	const q = `
INSERT INTO projects (id, name, description, state)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, state, created_at, updated_at;
`
	start := time.Now()

	var p domain.Project
	err := r.db.QueryRow(ctx, q, uuid.NewString(), name, description, string(state)).
		Scan(&p.ID, &p.Name, &p.Description, &p.State, &p.CreatedAt, &p.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		err = &domain.NameExistsError{Name: name}
	}
	if err = r.observe("create_project", start, err); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT id, name, description, state, created_at, updated_at
FROM projects
WHERE id = $1;
`
	start := time.Now()

	var p domain.Project
	err := r.db.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.State, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Absence is a valid outcome here; the service decides what it means.
		return nil, r.observe("get_project_by_id", start, nil)
	}
	if err = r.observe("get_project_by_id", start, err); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) List(ctx context.Context, skip, limit int, state *domain.State) ([]domain.Project, error) {
	const qAll = `
SELECT id, name, description, state, created_at, updated_at
FROM projects
ORDER BY created_at DESC
OFFSET $1 LIMIT $2;
`
	const qByState = `
SELECT id, name, description, state, created_at, updated_at
FROM projects
WHERE state = $3
ORDER BY created_at DESC
OFFSET $1 LIMIT $2;
`
	start := time.Now()

	var (
		rows pgx.Rows
		err  error
	)
	if state != nil {
		rows, err = r.db.Query(ctx, qByState, skip, limit, string(*state))
	} else {
		rows, err = r.db.Query(ctx, qAll, skip, limit)
	}
	if err != nil {
		return nil, r.observe("list_projects", start, err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, limit)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.State, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, r.observe("list_projects", start, err)
		}
		out = append(out, p)
	}
	if err := r.observe("list_projects", start, rows.Err()); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies only the provided fields in a single conditional statement.
// Zero rows affected means the ID does not exist; there is no separate
// existence check, so a concurrent delete surfaces cleanly as absence.
func (r *PostgresRepository) Update(ctx context.Context, id string, name, description *string, state *domain.State) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name        = COALESCE($2, name),
    description = COALESCE($3, description),
    state       = COALESCE($4, state),
    updated_at  = now()
WHERE id = $1
RETURNING id, name, description, state, created_at, updated_at;
`
	start := time.Now()

	var stateArg *string
	if state != nil {
		s := string(*state)
		stateArg = &s
	}

	var p domain.Project
	err := r.db.QueryRow(ctx, q, id, name, description, stateArg).
		Scan(&p.ID, &p.Name, &p.Description, &p.State, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.observe("update_project", start, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && name != nil {
		err = &domain.NameExistsError{Name: *name}
	}
	if err = r.observe("update_project", start, err); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM projects WHERE id = $1;`

	start := time.Now()

	ct, err := r.db.Exec(ctx, q, id)
	if err = r.observe("delete_project", start, err); err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

func (r *PostgresRepository) Count(ctx context.Context, state *domain.State) (int64, error) {
	const qAll = `SELECT count(*) FROM projects;`
	const qByState = `SELECT count(*) FROM projects WHERE state = $1;`

	start := time.Now()

	var (
		total int64
		err   error
	)
	if state != nil {
		err = r.db.QueryRow(ctx, qByState, string(*state)).Scan(&total)
	} else {
		err = r.db.QueryRow(ctx, qAll).Scan(&total)
	}
	if err = r.observe("count_projects", start, err); err != nil {
		return 0, err
	}
	return total, nil
}
