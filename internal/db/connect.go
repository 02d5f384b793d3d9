package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:ocean.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/ocean?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS response_sets (
  id TEXT PRIMARY KEY,
  assessment_id TEXT NOT NULL,
  subject_id TEXT NOT NULL,
  rater_id TEXT NOT NULL DEFAULT '',
  tier TEXT NOT NULL DEFAULT 'individual',
  responses_json TEXT NOT NULL,
  questions_json TEXT NOT NULL DEFAULT '[]',
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
  response_id TEXT PRIMARY KEY REFERENCES response_sets(id) ON DELETE CASCADE,
  assessment_id TEXT NOT NULL,
  details_json TEXT NOT NULL,
  scored_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_sets_subject ON response_sets(subject_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS response_sets (
  id TEXT PRIMARY KEY,
  assessment_id TEXT NOT NULL,
  subject_id TEXT NOT NULL,
  rater_id TEXT NOT NULL DEFAULT '',
  tier TEXT NOT NULL DEFAULT 'individual',
  responses_json TEXT NOT NULL,
  questions_json TEXT NOT NULL DEFAULT '[]',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
  response_id TEXT PRIMARY KEY REFERENCES response_sets(id) ON DELETE CASCADE,
  assessment_id TEXT NOT NULL,
  details_json TEXT NOT NULL,
  scored_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_response_sets_subject ON response_sets(subject_id);
`
