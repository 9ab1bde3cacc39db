// Package record defines the in-memory tabular structure that shelter
// batches move through: ordered rows of field→value maps plus a declared
// column set.
package record

// Record is a single shelter row: field name → raw or canonical value.
// Values are strings, numbers, bools, or nil for missing fields.
type Record map[string]any

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Batch is an ordered collection of records with a declared column set.
// Row order is part of the contract: normalization and filtering preserve
// the positional order of the input.
type Batch struct {
	cols   []string
	colSet map[string]struct{}
	rows   []Record
}

// NewBatch creates an empty batch with the given columns.
func NewBatch(columns ...string) *Batch {
	b := &Batch{colSet: make(map[string]struct{})}
	for _, c := range columns {
		b.AddColumn(c)
	}
	return b
}

// Columns returns the declared columns in declaration order.
func (b *Batch) Columns() []string {
	out := make([]string, len(b.cols))
	copy(out, b.cols)
	return out
}

// HasColumn reports whether the batch declares the named column.
func (b *Batch) HasColumn(name string) bool {
	_, ok := b.colSet[name]
	return ok
}

// AddColumn declares a column. Adding an existing column is a no-op.
func (b *Batch) AddColumn(name string) {
	if _, ok := b.colSet[name]; ok {
		return
	}
	b.cols = append(b.cols, name)
	b.colSet[name] = struct{}{}
}

// Len returns the number of rows.
func (b *Batch) Len() int { return len(b.rows) }

// Row returns the row at index i. The returned map is the batch's own
// storage; callers that need an independent copy should Clone it.
func (b *Batch) Row(i int) Record { return b.rows[i] }

// Append adds a row to the end of the batch.
func (b *Batch) Append(r Record) { b.rows = append(b.rows, r) }

// Rows returns copies of all rows in order.
func (b *Batch) Rows() []Record {
	out := make([]Record, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Clone()
	}
	return out
}

// Clone returns a deep copy of the batch. Mutating either the original or
// the clone afterwards never affects the other.
func (b *Batch) Clone() *Batch {
	out := NewBatch(b.cols...)
	out.rows = make([]Record, len(b.rows))
	for i, r := range b.rows {
		out.rows[i] = r.Clone()
	}
	return out
}

// Column collects the values of one column across all rows, in row order.
// Rows missing the field contribute nil.
func (b *Batch) Column(name string) []any {
	out := make([]any, len(b.rows))
	for i, r := range b.rows {
		out[i] = r[name]
	}
	return out
}

// Strings collects a column's values as strings, skipping rows where the
// field is absent or not a string.
func (b *Batch) Strings(name string) []string {
	var out []string
	for _, r := range b.rows {
		if s, ok := r[name].(string); ok {
			out = append(out, s)
		}
	}
	return out
}
