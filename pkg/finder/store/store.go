// Package store defines the record store collaborator: a key/value
// document collection supporting insert-if-absent by key, filtered read,
// and filtered bulk update/delete. The classification core never calls it
// directly; it only produces and consumes the batches it moves.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/grazioso/finder/pkg/finder/internalerr"
	"github.com/grazioso/finder/pkg/finder/record"
)

// Store is the interface rescue-finder backends implement.
type Store interface {
	Close() error

	// InsertIfAbsent stores rec unless a record with the same keyField
	// value already exists. It returns internalerr.ErrDuplicate for an
	// existing key and internalerr.ErrInvalidInput when rec is nil or the
	// key field is missing or empty.
	InsertIfAbsent(ctx context.Context, rec record.Record, keyField string) error

	// Find returns copies of all records whose fields equal every field
	// of query. An empty query matches everything.
	Find(ctx context.Context, query record.Record) ([]record.Record, error)

	// UpdateMany applies patch to every record matching query and returns
	// the number of records actually changed.
	UpdateMany(ctx context.Context, query, patch record.Record) (int, error)

	// DeleteMany removes every record matching query and returns the
	// number removed.
	DeleteMany(ctx context.Context, query record.Record) (int, error)
}

// Patch operators understood by UpdateMany.
const (
	OpSet   = "$set"
	OpUnset = "$unset"
)

// Matches reports whether rec satisfies every field of query by equality.
// Numeric values compare by value, so an int query field matches a
// float64 stored by a JSON round-trip.
func Matches(rec, query record.Record) bool {
	for k, want := range query {
		got, ok := rec[k]
		if !ok {
			return false
		}
		if !equalValue(got, want) {
			return false
		}
	}
	return true
}

// NormalizePatch applies the update operator contract: a patch whose keys
// all lack the "$" prefix is wrapped as {"$set": patch}; a patch using
// operators may only use $set and $unset. Mixing operator and plain keys,
// or using an unknown operator, is invalid input.
func NormalizePatch(patch record.Record) (record.Record, error) {
	if len(patch) == 0 {
		return nil, fmt.Errorf("empty patch: %w", internalerr.ErrInvalidInput)
	}

	hasOperator := false
	for k := range patch {
		if strings.HasPrefix(k, "$") {
			hasOperator = true
			break
		}
	}

	if !hasOperator {
		return record.Record{OpSet: patch.Clone()}, nil
	}

	for k := range patch {
		switch k {
		case OpSet, OpUnset:
		default:
			return nil, fmt.Errorf("unsupported update operator %q: %w", k, internalerr.ErrInvalidInput)
		}
	}

	out := record.Record{}
	for k, v := range patch {
		fields, ok := v.(record.Record)
		if !ok {
			if m, isMap := v.(map[string]any); isMap {
				fields = record.Record(m)
			} else {
				return nil, fmt.Errorf("operator %q needs a field map: %w", k, internalerr.ErrInvalidInput)
			}
		}
		out[k] = fields.Clone()
	}
	return out, nil
}

// ApplyPatch applies a normalized patch to a copy of rec, reporting
// whether anything changed.
func ApplyPatch(rec record.Record, patch record.Record) (record.Record, bool) {
	out := rec.Clone()
	changed := false

	if fields, ok := patch[OpSet].(record.Record); ok {
		for k, v := range fields {
			if old, exists := out[k]; !exists || !equalValue(old, v) {
				out[k] = v
				changed = true
			}
		}
	}
	if fields, ok := patch[OpUnset].(record.Record); ok {
		for k := range fields {
			if _, exists := out[k]; exists {
				delete(out, k)
				changed = true
			}
		}
	}

	return out, changed
}

func equalValue(a, b any) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}
