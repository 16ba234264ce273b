package domain

import (
	"fmt"
	"strconv"
)

// Column positions read by the analysis core. Observation sheets carry
// the timestamp in the second column and the free-text observation code
// in the third; everything else is opaque to the core.
const (
	TimestampColumn   = 1
	ObservationColumn = 2
)

// Cell is a single spreadsheet cell value: nil for an empty cell,
// float64 for a numeric cell, string for everything else.
type Cell interface{}

// Row is one observation record, indexed positionally in sheet order.
type Row []Cell

// Cell returns the value at the given column, or nil when the row is
// shorter than that.
func (r Row) Cell(col int) Cell {
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// Text returns the textual form of the value at the given column.
// Numeric cells are rendered the way strconv formats them; nil cells
// render as the empty string.
func (r Row) Text(col int) string {
	return CellText(r.Cell(col))
}

// CellText coerces a cell value to its textual form.
func CellText(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FocalFollowRange is one contiguous focal-follow segment, delimited by
// an "F: <type>" start marker and an "end" marker in the observation
// column. Row indices are 0-based and inclusive. Ranges are emitted in
// start-marker encounter order and never mutated after creation.
type FocalFollowRange struct {
	StartRow  int    `json:"start_row"`
	EndRow    int    `json:"end_row"`
	FocalType string `json:"focal_type"`
	RowCount  int    `json:"row_count"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ValidationResult is the outcome of one consistency check over a row
// set. Passed is true exactly when Issues is empty; Warnings are
// non-blocking observations.
type ValidationResult struct {
	Check    string   `json:"check"`
	Passed   bool     `json:"passed"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}

// PerFileRowSet holds the unmerged rows belonging to one source file.
// Per-file boundaries are lost once files are merged, so the marker
// balance check works from these.
type PerFileRowSet struct {
	FileName string `json:"file_name"`
	Rows     []Row  `json:"rows"`
}
