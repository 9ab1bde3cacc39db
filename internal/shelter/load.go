// Package shelter loads animal shelter outcome exports (CSV or XLSX)
// into record batches. Cell values stay raw strings; the parsers in
// pkg/finder/parse own all coercion.
package shelter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/grazioso/finder/pkg/finder/record"
)

// LoadCSV reads a CSV export whose first row is the header.
func LoadCSV(path string) (*record.Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // exports are ragged at times
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return batchFromRows(rows)
}

// LoadXLSX reads the first sheet of an Excel export whose first row is
// the header.
func LoadXLSX(path string) (*record.Batch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}

	return batchFromRows(rows)
}

// batchFromRows turns a header row plus data rows into a batch. Headers
// are trimmed; short rows leave trailing fields absent rather than empty.
func batchFromRows(rows [][]string) (*record.Batch, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("export has no header row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	b := record.NewBatch(headers...)
	for _, row := range rows[1:] {
		rec := make(record.Record, len(headers))
		for i, h := range headers {
			if h == "" || i >= len(row) {
				continue
			}
			rec[h] = row[i]
		}
		b.Append(rec)
	}
	return b, nil
}
