package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/grazioso/finder/pkg/finder/internalerr"
	"github.com/grazioso/finder/pkg/finder/record"
)

func TestInsertIfAbsent(t *testing.T) {
	s := New()
	defer s.Close()
	ctx := context.Background()

	rec := record.Record{"animal_id": "A001", "animal_type": "Dog"}
	if err := s.InsertIfAbsent(ctx, rec, "animal_id"); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := s.InsertIfAbsent(ctx, record.Record{"animal_id": "A001"}, "animal_id")
	if !errors.Is(err, internalerr.ErrDuplicate) {
		t.Errorf("duplicate insert err = %v, want ErrDuplicate", err)
	}
}

func TestInsertIfAbsentInvalidInput(t *testing.T) {
	s := New()
	ctx := context.Background()

	cases := []struct {
		name     string
		rec      record.Record
		keyField string
	}{
		{"nil record", nil, "animal_id"},
		{"empty key field", record.Record{"animal_id": "A001"}, ""},
		{"missing key", record.Record{"name": "Rex"}, "animal_id"},
		{"empty key value", record.Record{"animal_id": ""}, "animal_id"},
	}
	for _, tt := range cases {
		if err := s.InsertIfAbsent(ctx, tt.rec, tt.keyField); !errors.Is(err, internalerr.ErrInvalidInput) {
			t.Errorf("%s: err = %v, want ErrInvalidInput", tt.name, err)
		}
	}
}

func TestFind(t *testing.T) {
	s := New()
	ctx := context.Background()

	seed := []record.Record{
		{"animal_id": "A001", "animal_type": "Dog", "breed": "Labrador Retriever Mix"},
		{"animal_id": "A002", "animal_type": "Dog", "breed": "German Shepherd"},
		{"animal_id": "A003", "animal_type": "Cat", "breed": "Domestic Shorthair"},
	}
	for _, rec := range seed {
		if err := s.InsertIfAbsent(ctx, rec, "animal_id"); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	dogs, err := s.Find(ctx, record.Record{"animal_type": "Dog"})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(dogs) != 2 {
		t.Errorf("Find(Dog) returned %d rows, want 2", len(dogs))
	}

	all, err := s.Find(ctx, record.Record{})
	if err != nil {
		t.Fatalf("Find(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Find(all) returned %d rows, want 3", len(all))
	}

	none, err := s.Find(ctx, record.Record{"animal_type": "Bird"})
	if err != nil {
		t.Fatalf("Find(none) failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Find(Bird) returned %d rows, want 0", len(none))
	}
}

func TestFindReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.InsertIfAbsent(ctx, record.Record{"animal_id": "A001", "name": "Rex"}, "animal_id"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	rows, err := s.Find(ctx, record.Record{})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	rows[0]["name"] = "Mutated"

	again, _ := s.Find(ctx, record.Record{})
	if again[0]["name"] != "Rex" {
		t.Error("mutating a Find result leaked into the store")
	}
}

func TestUpdateMany(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, rec := range []record.Record{
		{"animal_id": "A001", "animal_type": "Dog", "outcome_type": "Transfer"},
		{"animal_id": "A002", "animal_type": "Dog", "outcome_type": "Transfer"},
		{"animal_id": "A003", "animal_type": "Cat", "outcome_type": "Transfer"},
	} {
		if err := s.InsertIfAbsent(ctx, rec, "animal_id"); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	// Plain patch, auto-wrapped in $set.
	count, err := s.UpdateMany(ctx, record.Record{"animal_type": "Dog"}, record.Record{"outcome_type": "Adoption"})
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if count != 2 {
		t.Errorf("UpdateMany count = %d, want 2", count)
	}

	adopted, _ := s.Find(ctx, record.Record{"outcome_type": "Adoption"})
	if len(adopted) != 2 {
		t.Errorf("adopted rows = %d, want 2", len(adopted))
	}

	// Re-applying the same patch changes nothing.
	count, err = s.UpdateMany(ctx, record.Record{"animal_type": "Dog"}, record.Record{"outcome_type": "Adoption"})
	if err != nil {
		t.Fatalf("UpdateMany failed: %v", err)
	}
	if count != 0 {
		t.Errorf("idempotent update count = %d, want 0", count)
	}
}

func TestUpdateManyUnknownOperator(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, err := s.UpdateMany(ctx, record.Record{}, record.Record{"$inc": record.Record{"n": 1}})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("unknown operator err = %v, want ErrInvalidInput", err)
	}
}

func TestDeleteMany(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, rec := range []record.Record{
		{"animal_id": "A001", "animal_type": "Dog"},
		{"animal_id": "A002", "animal_type": "Cat"},
		{"animal_id": "A003", "animal_type": "Cat"},
	} {
		if err := s.InsertIfAbsent(ctx, rec, "animal_id"); err != nil {
			t.Fatalf("seed insert failed: %v", err)
		}
	}

	count, err := s.DeleteMany(ctx, record.Record{"animal_type": "Cat"})
	if err != nil {
		t.Fatalf("DeleteMany failed: %v", err)
	}
	if count != 2 {
		t.Errorf("DeleteMany count = %d, want 2", count)
	}

	remaining, _ := s.Find(ctx, record.Record{})
	if len(remaining) != 1 || remaining[0]["animal_id"] != "A001" {
		t.Errorf("remaining rows wrong: %v", remaining)
	}

	count, err = s.DeleteMany(ctx, record.Record{"animal_type": "Bird"})
	if err != nil {
		t.Fatalf("DeleteMany(no match) failed: %v", err)
	}
	if count != 0 {
		t.Errorf("DeleteMany(no match) count = %d, want 0", count)
	}
}
