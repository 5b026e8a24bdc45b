// Package memory provides an in-memory resignation store.
package memory

import (
	"context"
	"sync"

	"github.com/warp/leave-planner/resignation"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Store struct {
	mu      sync.RWMutex
	records []resignation.Record
	nextID  int64
}

func New() *Store {
	return &Store{nextID: 1}
}

// Insert appends a record. Append-only.
func (s *Store) Insert(_ context.Context, r resignation.Record) (resignation.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextID
	s.nextID++
	s.records = append(s.records, r)
	return r, nil
}

// Latest returns the record with the greatest CreatedAt, then the greatest ID.
func (s *Store) Latest(_ context.Context) (resignation.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return resignation.Record{}, resignation.ErrNotFound
	}

	latest := s.records[0]
	for _, r := range s.records[1:] {
		if r.CreatedAt.After(latest.CreatedAt) ||
			(r.CreatedAt.Equal(latest.CreatedAt) && r.ID > latest.ID) {
			latest = r
		}
	}
	return latest, nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
