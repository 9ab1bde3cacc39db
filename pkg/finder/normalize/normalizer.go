// Package normalize enriches raw shelter batches with canonical typed
// columns derived from their free-form attribute fields.
package normalize

import (
	"fmt"
	"strings"

	"github.com/grazioso/finder/pkg/finder/parse"
	"github.com/grazioso/finder/pkg/finder/record"
)

// Columns the input batch must declare.
const (
	ColAgeUponOutcome = "age_upon_outcome"
	ColSexUponOutcome = "sex_upon_outcome"
	ColLocationLat    = "location_lat"
	ColLocationLong   = "location_long"
)

// Columns added by normalization.
const (
	ColAgeWeeks     = "age_weeks"
	ColSex          = "sex"
	ColIntactStatus = "intact_status"
	ColValidCoords  = "valid_coords"
)

var requiredColumns = []string{
	ColAgeUponOutcome,
	ColSexUponOutcome,
	ColLocationLat,
	ColLocationLong,
}

// SchemaError reports a batch that does not declare every required
// column. Missing lists all absent columns, not just the first.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Normalize returns a deep copy of the batch with four derived columns
// added per row: age_weeks (nil when unparseable), sex, intact_status and
// valid_coords. The input batch is never mutated; the copy shares no
// state with it. An empty batch normalizes to an empty batch that still
// declares the derived columns. A *SchemaError is returned when any
// required source column is absent.
func Normalize(b *record.Batch) (*record.Batch, error) {
	var missing []string
	for _, col := range requiredColumns {
		if !b.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	out := b.Clone()
	out.AddColumn(ColAgeWeeks)
	out.AddColumn(ColSex)
	out.AddColumn(ColIntactStatus)
	out.AddColumn(ColValidCoords)

	for i := 0; i < out.Len(); i++ {
		row := out.Row(i)

		if weeks, ok := parse.AgeToWeeks(row[ColAgeUponOutcome]); ok {
			row[ColAgeWeeks] = weeks
		} else {
			row[ColAgeWeeks] = nil
		}

		sex, status := parse.SexIntact(row[ColSexUponOutcome])
		row[ColSex] = string(sex)
		row[ColIntactStatus] = string(status)

		row[ColValidCoords] = parse.ValidCoordinates(row[ColLocationLat], row[ColLocationLong])
	}

	return out, nil
}
