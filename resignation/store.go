/*
store.go - Persistence interface for resignation records

APPEND-ONLY CONTRACT:
  Records are inserted once and never updated or deleted. The only read the
  planner needs is the most recently created record.

ORDERING:
  "Latest" means greatest CreatedAt. Records created within the same second
  are ordered by ID, which stores assign in insertion order.

IMPLEMENTATIONS:
  - store/sqlite:   default, file or :memory:
  - store/postgres: gorm-backed, selected with DB_DRIVER=postgres
  - store/memory:   tests and local development
*/
package resignation

import "context"

// Store persists resignation records.
type Store interface {
	// Insert persists r and returns it with its assigned ID.
	// r.ID is ignored.
	Insert(ctx context.Context, r Record) (Record, error)

	// Latest returns the most recently created record, or ErrNotFound.
	Latest(ctx context.Context) (Record, error)
}
