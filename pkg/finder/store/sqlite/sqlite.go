// Package sqlite provides a store.Store backed by a SQLite document
// table, so seeded shelter records survive process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/grazioso/finder/pkg/finder/internalerr"
	"github.com/grazioso/finder/pkg/finder/record"
	"github.com/grazioso/finder/pkg/finder/store"
)

// sqliteStore implements the Store interface using SQLite. Records are
// stored as JSON documents; query matching happens in Go so the equality
// semantics are identical to memstore's.
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite-backed store with WAL mode enabled, creating the
// schema on first use.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	doc TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

type storedRow struct {
	id  int64
	rec record.Record
}

func (s *sqliteStore) loadAll(ctx context.Context) ([]storedRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, doc FROM records ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()

	var out []storedRow
	for rows.Next() {
		var id int64
		var doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec record.Record
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", id, err)
		}
		out = append(out, storedRow{id: id, rec: rec})
	}
	return out, rows.Err()
}

// InsertIfAbsent implements store.Store.
func (s *sqliteStore) InsertIfAbsent(ctx context.Context, rec record.Record, keyField string) error {
	if rec == nil || keyField == "" {
		return fmt.Errorf("insert: %w", internalerr.ErrInvalidInput)
	}
	key, ok := rec[keyField]
	if !ok || key == nil || key == "" {
		return fmt.Errorf("insert: missing key field %q: %w", keyField, internalerr.ErrInvalidInput)
	}

	existing, err := s.loadAll(ctx)
	if err != nil {
		return err
	}
	keyQuery := record.Record{keyField: key}
	for _, row := range existing {
		if store.Matches(row.rec, keyQuery) {
			return fmt.Errorf("insert: %s=%v: %w", keyField, key, internalerr.ErrDuplicate)
		}
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "INSERT INTO records (doc) VALUES (?)", string(doc)); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Find implements store.Store.
func (s *sqliteStore) Find(ctx context.Context, query record.Record) ([]record.Record, error) {
	if query == nil {
		return nil, fmt.Errorf("find: %w", internalerr.ErrInvalidInput)
	}

	rows, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []record.Record
	for _, row := range rows {
		if store.Matches(row.rec, query) {
			out = append(out, row.rec)
		}
	}
	return out, nil
}

// UpdateMany implements store.Store.
func (s *sqliteStore) UpdateMany(ctx context.Context, query, patch record.Record) (int, error) {
	if query == nil || patch == nil {
		return 0, fmt.Errorf("update: %w", internalerr.ErrInvalidInput)
	}

	normalized, err := store.NormalizePatch(patch)
	if err != nil {
		return 0, fmt.Errorf("update: %w", err)
	}

	rows, err := s.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, row := range rows {
		if !store.Matches(row.rec, query) {
			continue
		}
		patched, changed := store.ApplyPatch(row.rec, normalized)
		if !changed {
			continue
		}
		doc, err := json.Marshal(patched)
		if err != nil {
			return count, fmt.Errorf("encode record %d: %w", row.id, err)
		}
		if _, err := s.db.ExecContext(ctx, "UPDATE records SET doc = ? WHERE id = ?", string(doc), row.id); err != nil {
			return count, fmt.Errorf("update record %d: %w", row.id, err)
		}
		count++
	}
	return count, nil
}

// DeleteMany implements store.Store.
func (s *sqliteStore) DeleteMany(ctx context.Context, query record.Record) (int, error) {
	if query == nil {
		return 0, fmt.Errorf("delete: %w", internalerr.ErrInvalidInput)
	}

	rows, err := s.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, row := range rows {
		if !store.Matches(row.rec, query) {
			continue
		}
		if _, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", row.id); err != nil {
			return count, fmt.Errorf("delete record %d: %w", row.id, err)
		}
		count++
	}
	return count, nil
}
