// Package sqlite stores extracted records in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

const schema = `
	CREATE TABLE IF NOT EXISTS entries (
		id            TEXT PRIMARY KEY,
		source_path   TEXT NOT NULL,
		content_hash  TEXT NOT NULL DEFAULT '',
		title         TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		summary       TEXT NOT NULL,
		body          TEXT NOT NULL,
		document_link TEXT,
		imported_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category);
	CREATE INDEX IF NOT EXISTS idx_entries_source_path ON entries(source_path);
`

// DB holds the connection to the record database.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB returns a DB for the file at path. Use ":memory:" for a database
// that lives only as long as the connection.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects, applies connection settings and creates the entries table.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite serializes writers, and an in-memory database
	// is private to the connection that created it.
	conn.SetMaxOpenConns(1)

	if err := setup(conn, db.path); err != nil {
		conn.Close()
		return err
	}

	db.db = conn
	return nil
}

func setup(conn *sql.DB, path string) error {
	if err := conn.Ping(); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != memoryPath {
		// WAL is unavailable for in-memory databases.
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("applying %q: %w", p, err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the connection if it is open.
func (db *DB) Close() error {
	if db.db == nil {
		return nil
	}
	return db.db.Close()
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext runs a query returning rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement without returning rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
