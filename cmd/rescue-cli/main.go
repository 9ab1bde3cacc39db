// rescue-cli screens a shelter outcome export for rescue-discipline
// candidates: load, normalize, filter, report.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/grazioso/finder/internal/shelter"
	"github.com/grazioso/finder/pkg/finder/bucket"
	"github.com/grazioso/finder/pkg/finder/config"
	"github.com/grazioso/finder/pkg/finder/normalize"
	"github.com/grazioso/finder/pkg/finder/record"
)

func main() {
	var (
		input      = flag.String("input", "", "shelter export to screen (.csv or .xlsx)")
		discipline = flag.String("filter", "reset", "rescue discipline: water, mountain, disaster, tracking, reset")
		configPath = flag.String("config", "", "optional YAML config (breed-set overrides)")
		topBreeds  = flag.Int("top-breeds", 0, "also print a top-N breed frequency bucketing")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input: path to a .csv or .xlsx shelter export")
	}

	comp, err := (&config.Loader{ConfigPath: *configPath}).Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	batch, err := loadExport(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}
	log.Printf("Loaded %d records from %s", batch.Len(), *input)

	normalized, err := normalize.Normalize(batch)
	if err != nil {
		log.Fatalf("Normalization failed: %v", err)
	}

	candidates, err := comp.Engine.Apply(normalized, *discipline)
	if err != nil {
		log.Fatalf("Filter failed: %v", err)
	}

	fmt.Printf("%d of %d records qualify for %q\n", candidates.Len(), normalized.Len(), *discipline)
	for i := 0; i < candidates.Len(); i++ {
		row := candidates.Row(i)
		fmt.Printf("  %v  %v  (%v, %v, %.1f weeks)\n",
			row["animal_id"], row["breed"],
			row[normalize.ColSex], row[normalize.ColIntactStatus],
			asWeeks(row[normalize.ColAgeWeeks]))
	}

	if *topBreeds > 0 {
		buckets := bucket.TopN(normalized.Strings("breed"), *topBreeds)
		fmt.Printf("\nTop-%d breed buckets:\n", *topBreeds)
		for breed, bucketed := range buckets {
			if bucketed != bucket.Other {
				fmt.Printf("  %s\n", breed)
			}
		}
	}
}

func loadExport(path string) (*record.Batch, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return shelter.LoadXLSX(path)
	}
	return shelter.LoadCSV(path)
}

func asWeeks(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}
