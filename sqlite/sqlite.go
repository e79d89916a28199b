// Package sqlite provides a membership store held in an in-memory SQLite
// database. Nothing is written to disk; the data is gone once the DB closes.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents an in-memory SQLite database connection.
type DB struct {
	db *sql.DB
}

// NewDB creates a new DB instance. Call Open before use.
func NewDB() *DB {
	return &DB{}
}

// Open opens the database connection and creates the schema.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so the pool
	// must never grow past one.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection, discarding its contents.
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

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS members (
			kind TEXT NOT NULL,
			key TEXT NOT NULL,
			PRIMARY KEY (kind, key)
		) WITHOUT ROWID;
	`

	_, err := db.db.Exec(schema)
	return err
}
