/*
Package sqlite provides a SQLite-backed implementation of resignation.Store.

PURPOSE:
  Default persistence for the planner. The schema mirrors the server
  deployment (store/postgres) so the two stores are interchangeable.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on the resignation table
  - No DELETE statements on the resignation table

KEY TABLES:
  resignation: one row per submitted record

COLUMN FORMATS:
  retirement_date  TEXT "YYYY-MM-DD"
  created_at       TEXT "YYYY-MM-DD HH:MM:SS", wall clock in the store location

  created_at has no zone suffix, so the store is told which location to read
  it back in (WithLocation, default UTC).

INDEXES:
  idx_resignation_created_at: Latest() (hot path)

CONCURRENCY:
  Uses sync.RWMutex for thread-safety and a single connection, which also
  keeps every caller on the same ":memory:" database.

USAGE:
  store, err := sqlite.New("./data/resignations.db", sqlite.WithLocation(jst))
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - resignation/store.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/leave-planner/calendar"
	"github.com/warp/leave-planner/resignation"
)

// Store implements resignation.Store using SQLite.
type Store struct {
	db  *sql.DB
	mu  sync.RWMutex
	loc *time.Location
}

// Option configures a Store.
type Option func(*Store)

// WithLocation sets the location created_at values are written and read in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	store := &Store{db: db, loc: time.UTC}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS resignation (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		retirement_date TEXT NOT NULL,
		remaining_paid_leave_days INTEGER NOT NULL CHECK (remaining_paid_leave_days >= 0),
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_resignation_created_at
		ON resignation(created_at DESC, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Insert persists a record and returns it with its assigned ID.
func (s *Store) Insert(ctx context.Context, r resignation.Record) (resignation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO resignation (retirement_date, remaining_paid_leave_days, created_at)
		VALUES (?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		r.RetirementDate.String(),
		r.RemainingPaidLeaveDays,
		r.CreatedAt.In(s.loc).Format(resignation.TimestampLayout),
	)
	if err != nil {
		return resignation.Record{}, fmt.Errorf("insert resignation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return resignation.Record{}, fmt.Errorf("insert resignation: %w", err)
	}
	r.ID = id
	return r, nil
}

// Latest returns the most recently created record.
func (s *Store) Latest(ctx context.Context) (resignation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, retirement_date, remaining_paid_leave_days, created_at
		FROM resignation
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var (
		r          resignation.Record
		retirement string
		createdAt  string
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&r.ID, &retirement, &r.RemainingPaidLeaveDays, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return resignation.Record{}, resignation.ErrNotFound
	}
	if err != nil {
		return resignation.Record{}, fmt.Errorf("query latest resignation: %w", err)
	}

	if r.RetirementDate, err = calendar.ParseDate(retirement); err != nil {
		return resignation.Record{}, fmt.Errorf("resignation %d: %w", r.ID, err)
	}
	if r.CreatedAt, err = time.ParseInLocation(resignation.TimestampLayout, createdAt, s.loc); err != nil {
		return resignation.Record{}, fmt.Errorf("resignation %d: parse created_at: %w", r.ID, err)
	}
	return r, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM resignation").Scan(&n)
	return n, err
}
