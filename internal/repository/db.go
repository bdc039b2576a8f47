package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS data_points (
	date               TEXT PRIMARY KEY,
	tasks_completed    INTEGER NOT NULL DEFAULT 0,
	focus_minutes      INTEGER NOT NULL DEFAULT 0,
	habits_score       REAL NOT NULL DEFAULT 0,
	events_count       INTEGER NOT NULL DEFAULT 0,
	productivity_score REAL NOT NULL DEFAULT 0,
	created_at         TIMESTAMP NOT NULL,
	updated_at         TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS insights (
	id           TEXT PRIMARY KEY,
	type         TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL,
	severity     TEXT NOT NULL,
	category     TEXT NOT NULL,
	data         TEXT,
	generated_at TIMESTAMP NOT NULL,
	is_read      INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_insights_generated_at ON insights(generated_at);

CREATE TABLE IF NOT EXISTS reports (
	id           TEXT PRIMARY KEY,
	period       TEXT NOT NULL,
	start_date   TEXT NOT NULL,
	end_date     TEXT NOT NULL,
	body         TEXT NOT NULL,
	generated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_reports_generated_at ON reports(generated_at);

CREATE TABLE IF NOT EXISTS goals (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	target_metric TEXT NOT NULL,
	target_value  REAL NOT NULL,
	current_value REAL NOT NULL DEFAULT 0,
	deadline      TEXT,
	status        TEXT NOT NULL DEFAULT 'active',
	created_at    TIMESTAMP NOT NULL,
	updated_at    TIMESTAMP NOT NULL
);
`

// Open opens (creating if necessary) the SQLite database at path and
// bootstraps the schema. The engine assumes single-writer discipline, so
// the connection pool is capped at one writer.
func Open(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows one writer; serialize all access through one connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA foreign_keys=ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
