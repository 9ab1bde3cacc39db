// Package finder is the rescue-candidate screening engine: it seeds a
// record store with shelter outcomes, normalizes them into canonical
// typed columns, and selects candidates per rescue discipline.
package finder

import (
	"context"
	"errors"
	"sort"

	"github.com/grazioso/finder/pkg/finder/breeds"
	"github.com/grazioso/finder/pkg/finder/bucket"
	"github.com/grazioso/finder/pkg/finder/filter"
	"github.com/grazioso/finder/pkg/finder/internalerr"
	"github.com/grazioso/finder/pkg/finder/normalize"
	"github.com/grazioso/finder/pkg/finder/record"
	"github.com/grazioso/finder/pkg/finder/store"
	"github.com/grazioso/finder/pkg/finder/store/memstore"
)

// KeyField is the default record key for shelter data.
const KeyField = "animal_id"

// Finder composes the record store with the normalization and filtering
// pipeline.
type Finder struct {
	store  store.Store
	engine *filter.Engine
}

// Options configures a Finder instance.
type Options struct {
	Store     store.Store // nil → in-memory store
	BreedSets breeds.Sets // nil → default table
}

// New creates a Finder with the given dependencies.
func New(opts Options) *Finder {
	st := opts.Store
	if st == nil {
		st = memstore.New()
	}
	return &Finder{
		store:  st,
		engine: filter.NewEngine(opts.BreedSets),
	}
}

// Close cleanly shuts down the Finder instance.
func (f *Finder) Close() error {
	return f.store.Close()
}

// SeedResult summarizes a bulk load.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// Seed bulk-inserts a batch into the store, keyed by keyField. Records
// already present (same key) are skipped, not errors; anything else
// aborts the load.
func (f *Finder) Seed(ctx context.Context, b *record.Batch, keyField string) (SeedResult, error) {
	var res SeedResult
	for i := 0; i < b.Len(); i++ {
		err := f.store.InsertIfAbsent(ctx, b.Row(i), keyField)
		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, internalerr.ErrDuplicate):
			res.Skipped++
		default:
			return res, err
		}
	}
	return res, nil
}

// Candidates loads all stored records, normalizes them, and applies the
// named discipline filter. Errors from normalization (*SchemaError) and
// dispatch (*InvalidFilterError) pass through untouched.
func (f *Finder) Candidates(ctx context.Context, discipline string) (*record.Batch, error) {
	b, err := f.loadBatch(ctx)
	if err != nil {
		return nil, err
	}

	normalized, err := normalize.Normalize(b)
	if err != nil {
		return nil, err
	}

	return f.engine.Apply(normalized, discipline)
}

// BreedBuckets maps each stored breed to itself or "Other", keeping the
// topN most frequent breeds distinct for display.
func (f *Finder) BreedBuckets(ctx context.Context, topN int) (map[string]string, error) {
	b, err := f.loadBatch(ctx)
	if err != nil {
		return nil, err
	}
	return bucket.TopN(b.Strings("breed"), topN), nil
}

// loadBatch pulls every stored record into a batch whose column set is
// the union of all record fields, sorted for determinism.
func (f *Finder) loadBatch(ctx context.Context) (*record.Batch, error) {
	rows, err := f.store.Find(ctx, record.Record{})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// An empty store still yields a well-formed batch.
		return record.NewBatch(
			normalize.ColAgeUponOutcome, normalize.ColSexUponOutcome,
			normalize.ColLocationLat, normalize.ColLocationLong,
		), nil
	}

	colSet := make(map[string]struct{})
	for _, rec := range rows {
		for k := range rec {
			colSet[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(colSet))
	for k := range colSet {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	b := record.NewBatch(cols...)
	for _, rec := range rows {
		b.Append(rec)
	}
	return b, nil
}
