package repository

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
)

func testRepo() *PostgresRepository {
	return NewPostgresRepository(nil, zerolog.Nop(), time.Second)
}

func TestObserve_Success(t *testing.T) {
	assert.NoError(t, testRepo().observe("list_projects", time.Now(), nil))
}

func TestObserve_WrapsQueryFailures(t *testing.T) {
	err := testRepo().observe("list_projects", time.Now(), errors.New("syntax error"))

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "list_projects", qerr.Op)
	assert.Contains(t, qerr.Error(), "syntax error")
}

func TestObserve_ConnectionFailuresAreDistinct(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	err := testRepo().observe("get_project_by_id", time.Now(), dialErr)

	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "get_project_by_id", connErr.Op)

	var qerr *QueryError
	assert.False(t, errors.As(err, &qerr))

	err = testRepo().observe("create_project", time.Now(), &pgconn.ConnectError{})
	require.ErrorAs(t, err, &connErr)
}

func TestObserve_PassesThroughDomainAndCancellation(t *testing.T) {
	nameErr := &domain.NameExistsError{Name: "alpha"}
	assert.Equal(t, error(nameErr), testRepo().observe("create_project", time.Now(), nameErr))

	err := testRepo().observe("list_projects", time.Now(), context.Canceled)
	assert.ErrorIs(t, err, context.Canceled)
}
