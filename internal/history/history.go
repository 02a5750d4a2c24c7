// Package history persists harness run outcomes in a local SQLite database.
//
// # Overview
//
// Open initializes the database at the configured DSN and applies the
// embedded goose migrations. Each completed run is stored with a generated
// uuid, its verdict, the one-line summary, and the captured output.
//
// # Error Handling
//
// GetByID returns ErrNotFound when no run with the given id exists. All
// other errors wrap the underlying database error.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/history/migrations"
)

var ErrNotFound = errors.New("run not found")

// timeLayout is a fixed-width RFC3339 form so stored timestamps sort
// correctly as text; RFC3339Nano trims trailing zeros, which breaks
// lexicographic ordering within a second.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one persisted harness run.
type Record struct {
	ID         string    `json:"id"`
	Suite      string    `json:"suite"`
	Passed     bool      `json:"passed"`
	Summary    string    `json:"summary"`
	Output     string    `json:"output,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Store is a run-history repository backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dsn and applies pending
// migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores the record, assigning a fresh uuid when ID is empty, and
// returns the stored record.
func (s *Store) Insert(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query := `INSERT INTO runs (id, suite, passed, summary, output, started_at, finished_at)
			values (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Suite, rec.Passed, rec.Summary, rec.Output,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.FinishedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return Record{}, fmt.Errorf("failed to insert run: %w", err)
	}
	return rec, nil
}

// ListRecent returns up to limit runs, newest first, without their output.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `select id, suite, passed, summary, started_at, finished_at
			from runs order by started_at desc limit ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select runs: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		var (
			item     Record
			started  string
			finished string
		)
		if err := rows.Scan(&item.ID, &item.Suite, &item.Passed, &item.Summary, &started, &finished); err != nil {
			return nil, err
		}
		if item.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if item.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns one run including its captured output.
func (s *Store) GetByID(ctx context.Context, id string) (Record, error) {
	query := `select id, suite, passed, summary, output, started_at, finished_at
			from runs where id = ?`
	var (
		item     Record
		started  string
		finished string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Suite, &item.Passed, &item.Summary, &item.Output, &started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to select run: %w", err)
	}
	if item.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Record{}, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if item.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return Record{}, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	return item, nil
}
