// Package filter selects rescue-discipline candidates from normalized
// shelter batches. Each discipline is a data-driven rule: a breed set
// reference, required sex and intact status, and an inclusive age range
// in weeks. A row qualifies only when every clause holds.
package filter

import (
	"fmt"
	"strings"

	"github.com/grazioso/finder/pkg/finder/breeds"
	"github.com/grazioso/finder/pkg/finder/normalize"
	"github.com/grazioso/finder/pkg/finder/parse"
	"github.com/grazioso/finder/pkg/finder/record"
)

// Discipline is a named working-dog rescue specialty.
type Discipline string

// Recognized disciplines. Reset means "no filter".
const (
	Water    Discipline = "water"
	Mountain Discipline = "mountain"
	Disaster Discipline = "disaster"
	Tracking Discipline = "tracking"
	Reset    Discipline = "reset"
)

// Rule is one discipline's eligibility criteria. BreedSet names the entry
// in the breed table; the age bounds are inclusive.
type Rule struct {
	BreedSet string
	Sex      parse.Sex
	Intact   parse.IntactStatus
	MinWeeks float64
	MaxWeeks float64
}

// InvalidFilterError reports an unrecognized discipline name.
type InvalidFilterError struct {
	Name string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter type: %q (valid options: water, mountain, disaster, tracking, reset)", e.Name)
}

// Engine evaluates discipline rules against normalized batches.
type Engine struct {
	sets  breeds.Sets
	rules map[Discipline]Rule
}

// NewEngine creates an engine over the given breed table. A nil table
// uses the default one.
func NewEngine(sets breeds.Sets) *Engine {
	if sets == nil {
		sets = breeds.Default()
	}
	return &Engine{
		sets: sets,
		rules: map[Discipline]Rule{
			Water:    {BreedSet: "water", Sex: parse.SexFemale, Intact: parse.StatusIntact, MinWeeks: 26, MaxWeeks: 156},
			Mountain: {BreedSet: "mountain", Sex: parse.SexMale, Intact: parse.StatusIntact, MinWeeks: 26, MaxWeeks: 156},
			Disaster: {BreedSet: "disaster", Sex: parse.SexMale, Intact: parse.StatusIntact, MinWeeks: 20, MaxWeeks: 300},
		},
	}
}

// Rules returns a copy of the discipline rule table.
func (e *Engine) Rules() map[Discipline]Rule {
	out := make(map[Discipline]Rule, len(e.rules))
	for d, r := range e.rules {
		out[d] = r
	}
	return out
}

// Apply filters the batch down to rows qualifying for the named
// discipline, preserving row order. The name is trimmed and lower-cased
// before dispatch; wilderness is an alias of mountain, tracking of
// disaster, and the empty string of reset. Reset returns the input batch
// unchanged. Unrecognized names return an *InvalidFilterError.
func (e *Engine) Apply(b *record.Batch, name string) (*record.Batch, error) {
	switch Discipline(strings.ToLower(strings.TrimSpace(name))) {
	case Water:
		return e.filter(b, e.rules[Water]), nil
	case Mountain, "wilderness":
		return e.filter(b, e.rules[Mountain]), nil
	case Disaster, Tracking:
		return e.filter(b, e.rules[Disaster]), nil
	case Reset, "":
		return b, nil
	default:
		return nil, &InvalidFilterError{Name: name}
	}
}

func (e *Engine) filter(b *record.Batch, r Rule) *record.Batch {
	out := record.NewBatch(b.Columns()...)
	for i := 0; i < b.Len(); i++ {
		row := b.Row(i)
		if e.rowMatches(row, r) {
			out.Append(row.Clone())
		}
	}
	return out
}

// rowMatches evaluates all clauses with logical AND. Rows whose age_weeks
// is absent or nil never match: an age comparison against a missing value
// is false, not an error.
func (e *Engine) rowMatches(row record.Record, r Rule) bool {
	breed, _ := row["breed"].(string)
	if !e.sets.Matches(breed, r.BreedSet) {
		return false
	}
	if row[normalize.ColSex] != string(r.Sex) {
		return false
	}
	if row[normalize.ColIntactStatus] != string(r.Intact) {
		return false
	}
	weeks, ok := row[normalize.ColAgeWeeks].(float64)
	if !ok {
		return false
	}
	return weeks >= r.MinWeeks && weeks <= r.MaxWeeks
}

// Apply filters with an engine over the default breed table.
func Apply(b *record.Batch, name string) (*record.Batch, error) {
	return NewEngine(nil).Apply(b, name)
}
