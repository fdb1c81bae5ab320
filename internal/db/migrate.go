package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/tracklane/project-tracker-backend/config"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          text PRIMARY KEY,
		name        text NOT NULL,
		description text,
		state       text NOT NULL DEFAULT 'PLANNED',
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS projects_name_key ON projects (name);`,
	`CREATE INDEX IF NOT EXISTS projects_state_idx ON projects (state);`,
}

// Migrate applies the schema over a short-lived database/sql connection.
// Statements are idempotent, so running this on every start is safe.
func Migrate(cfg *config.DatabaseConfig) error {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
