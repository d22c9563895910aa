// Package diag keeps a local record of search and lead outcomes for support
// debugging. It never stores lead contact details.
package diag

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Kind says which operation an outcome belongs to.
type Kind string

const (
	KindSearch Kind = "search"
	KindLead   Kind = "lead"
)

// Outcome is one recorded result.
type Outcome struct {
	ID         int64
	Kind       Kind
	Status     string
	HTTPStatus int
	Detail     string
	RequestID  string
	CreatedAt  time.Time
}

const schema = `CREATE TABLE IF NOT EXISTS Outcome (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	status TEXT NOT NULL,
	http_status INTEGER NOT NULL DEFAULT 0,
	detail TEXT NOT NULL DEFAULT '',
	request_id TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Store persists outcomes. A nil *Store is valid and records nothing.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite database at databaseURL and ensures the table
// exists. An empty databaseURL disables the store and returns nil.
func Open(databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, nil
	}

	db, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open diagnostics database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping diagnostics database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create diagnostics schema: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection, used by tests.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Enabled reports whether outcomes are being recorded.
func (s *Store) Enabled() bool {
	return s != nil && s.db != nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Enabled() {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.db.Close()
}

// Record saves one outcome.
func (s *Store) Record(ctx context.Context, o Outcome) error {
	if !s.Enabled() {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO Outcome (kind, status, http_status, detail, request_id) VALUES (?, ?, ?, ?, ?)",
		string(o.Kind), o.Status, o.HTTPStatus, o.Detail, o.RequestID,
	)
	if err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}
	return nil
}

// Recent returns the latest outcomes, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Outcome, error) {
	if !s.Enabled() {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, kind, status, http_status, detail, request_id, created_at FROM Outcome ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var o Outcome
		var kind string
		if err := rows.Scan(&o.ID, &kind, &o.Status, &o.HTTPStatus, &o.Detail, &o.RequestID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan outcome: %w", err)
		}
		o.Kind = Kind(kind)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// Prune deletes outcomes older than maxAge and returns how many were removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}

	res, err := s.db.ExecContext(ctx,
		"DELETE FROM Outcome WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d seconds", int64(maxAge.Seconds())),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune outcomes: %w", err)
	}
	return res.RowsAffected()
}
