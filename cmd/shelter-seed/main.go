// shelter-seed bulk-loads a shelter outcome export into the SQLite
// record store, skipping animals that are already present.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/grazioso/finder/internal/shelter"
	"github.com/grazioso/finder/pkg/finder"
	"github.com/grazioso/finder/pkg/finder/record"
	"github.com/grazioso/finder/pkg/finder/store/sqlite"
)

func main() {
	var (
		input    = flag.String("input", "", "shelter export to load (.csv or .xlsx)")
		dbPath   = flag.String("db", "shelter.db", "SQLite store path")
		keyField = flag.String("key", finder.KeyField, "record key field")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input: path to a .csv or .xlsx shelter export")
	}

	ctx := context.Background()

	st, err := sqlite.Open(ctx, *dbPath)
	if err != nil {
		log.Fatalf("Failed to open store %s: %v", *dbPath, err)
	}

	f := finder.New(finder.Options{Store: st})
	defer f.Close()

	batch, err := loadExport(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}
	log.Printf("Loaded %d records from %s", batch.Len(), *input)

	res, err := f.Seed(ctx, batch, *keyField)
	if err != nil {
		log.Fatalf("Seed failed after %d inserts: %v", res.Inserted, err)
	}
	log.Printf("Seeded %s: %d inserted, %d already present", *dbPath, res.Inserted, res.Skipped)
}

func loadExport(path string) (*record.Batch, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return shelter.LoadXLSX(path)
	}
	return shelter.LoadCSV(path)
}
