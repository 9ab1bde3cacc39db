// Package memstore provides an in-memory store.Store used by tests and
// as the facade default.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/grazioso/finder/pkg/finder/internalerr"
	"github.com/grazioso/finder/pkg/finder/record"
	"github.com/grazioso/finder/pkg/finder/store"
)

// Store is an in-memory implementation of store.Store. Rows are copied on
// the way in and out, so callers never share state with the store.
type Store struct {
	mu   sync.RWMutex
	rows []record.Record
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// InsertIfAbsent implements store.Store.
func (s *Store) InsertIfAbsent(ctx context.Context, rec record.Record, keyField string) error {
	if rec == nil || keyField == "" {
		return fmt.Errorf("insert: %w", internalerr.ErrInvalidInput)
	}
	key, ok := rec[keyField]
	if !ok || key == nil || key == "" {
		return fmt.Errorf("insert: missing key field %q: %w", keyField, internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	keyQuery := record.Record{keyField: key}
	for _, existing := range s.rows {
		if store.Matches(existing, keyQuery) {
			return fmt.Errorf("insert: %s=%v: %w", keyField, key, internalerr.ErrDuplicate)
		}
	}

	s.rows = append(s.rows, rec.Clone())
	return nil
}

// Find implements store.Store.
func (s *Store) Find(ctx context.Context, query record.Record) ([]record.Record, error) {
	if query == nil {
		return nil, fmt.Errorf("find: %w", internalerr.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []record.Record
	for _, rec := range s.rows {
		if store.Matches(rec, query) {
			out = append(out, rec.Clone())
		}
	}
	return out, nil
}

// UpdateMany implements store.Store.
func (s *Store) UpdateMany(ctx context.Context, query, patch record.Record) (int, error) {
	if query == nil || patch == nil {
		return 0, fmt.Errorf("update: %w", internalerr.ErrInvalidInput)
	}

	normalized, err := store.NormalizePatch(patch)
	if err != nil {
		return 0, fmt.Errorf("update: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i, rec := range s.rows {
		if !store.Matches(rec, query) {
			continue
		}
		patched, changed := store.ApplyPatch(rec, normalized)
		if changed {
			s.rows[i] = patched
			count++
		}
	}
	return count, nil
}

// DeleteMany implements store.Store.
func (s *Store) DeleteMany(ctx context.Context, query record.Record) (int, error) {
	if query == nil {
		return 0, fmt.Errorf("delete: %w", internalerr.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	count := 0
	for _, rec := range s.rows {
		if store.Matches(rec, query) {
			count++
			continue
		}
		kept = append(kept, rec)
	}
	s.rows = kept
	return count, nil
}
