/*
PURPOSE:
  Loads the input table and extracts the first column.
  Supports CSV and XLSX, selected by file extension.

REQUIREMENTS:
  User-specified:
  - Only the first column matters; values are trimmed and blanks dropped.
  - CSV and spreadsheet input must behave identically.

  Implementation-discovered:
  - The first row is a header row and is never data. Tables come out of
    spreadsheet tools with a label row on top; treating row one as data would
    silently inject column names into the run.
  - CSV rows may be ragged (FieldsPerRecord = -1); only column one is read.
  - Legacy .xls is routed to the spreadsheet path and surfaces as an open
    error from excelize; it is not a zip container.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (runner), internal/cli (preview)
  - Dependencies: encoding/csv, github.com/xuri/excelize/v2

ERROR HANDLING:
  - ErrNoColumns when the file yields no columns at all.
  - ErrNoData when nothing usable remains after trimming.
  - Open/parse errors are wrapped with the offending path.

IMPLEMENTATION RULES:
  - No deduplication, no type coercion beyond cell-to-string.
  - Preserve row order exactly.

USAGE:
  items, err := table.ExtractFirstColumn("data/items.xlsx")

SELF-HEALING INSTRUCTIONS:
  - New input formats get a case in ExtractFirstColumn and feed firstColumn,
    so the trimming rules stay in one place.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update when new table formats are needed.
*/

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrNoColumns reports a table with no columns at all.
	ErrNoColumns = errors.New("input table has no columns")
	// ErrNoData reports a first column with no usable values.
	ErrNoData = errors.New("no data found in the first column")
)

// ExtractFirstColumn reads the table at path and returns the ordered, trimmed,
// non-empty values of its first column, excluding the header row.
func ExtractFirstColumn(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return extractFromSpreadsheet(path)
	default:
		return extractFromCSV(path)
	}
}

func extractFromCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", path, err)
	}
	return firstColumn(rows)
}

func extractFromSpreadsheet(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheet, path, err)
	}
	return firstColumn(rows)
}

// firstColumn applies the shared extraction rules: row one is the header,
// cells are trimmed, blanks are dropped, order is preserved.
func firstColumn(rows [][]string) ([]string, error) {
	hasColumn := false
	for _, row := range rows {
		if len(row) > 0 {
			hasColumn = true
			break
		}
	}
	if !hasColumn {
		return nil, ErrNoColumns
	}

	values := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		v := strings.TrimSpace(row[0])
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	return values, nil
}
