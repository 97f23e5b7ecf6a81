// Package sqlite provides SQLite-based storage implementations for
// miluim services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write
	// performance. WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			post_id INTEGER NOT NULL,
			ad_number TEXT NOT NULL,
			role TEXT NOT NULL,
			role_position INTEGER NOT NULL DEFAULT 0,
			unit_type TEXT NOT NULL DEFAULT '',
			area TEXT NOT NULL DEFAULT '',
			qualifications TEXT NOT NULL DEFAULT '',
			unit_info TEXT NOT NULL DEFAULT '',
			service_terms TEXT NOT NULL DEFAULT '',
			service_period TEXT NOT NULL DEFAULT '',
			start_month TEXT NOT NULL DEFAULT '',
			end_month TEXT NOT NULL DEFAULT '',
			immediate INTEGER NOT NULL DEFAULT 0,
			recruitment_type TEXT NOT NULL DEFAULT '',
			exemption TEXT NOT NULL DEFAULT '',
			pool TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			search_text TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS scan_runs (
			id TEXT PRIMARY KEY,
			start_id INTEGER NOT NULL,
			end_id INTEGER NOT NULL,
			base_url TEXT NOT NULL,
			posts INTEGER NOT NULL DEFAULT 0,
			records INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_post_id ON records(post_id);
		CREATE INDEX IF NOT EXISTS idx_records_area ON records(area);
		CREATE INDEX IF NOT EXISTS idx_records_unit_type ON records(unit_type);
		CREATE INDEX IF NOT EXISTS idx_scan_runs_range ON scan_runs(start_id, end_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
