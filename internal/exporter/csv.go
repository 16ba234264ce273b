package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"ethocli/pkg/contracts/domain"
)

// utf8BOM makes Excel detect UTF-8 encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter exports analysis reports as CSV
type CSVWriter struct {
	// BOMPrefix adds a UTF-8 BOM for Excel compatibility
	BOMPrefix bool
}

// NewCSVWriter creates a CSV writer with Excel-friendly defaults
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{BOMPrefix: true}
}

// WriteRanges writes the merged focal-follow ranges of a report, one
// line per range. Row indices are 1-based to match spreadsheet row
// numbering.
func (c *CSVWriter) WriteRanges(w io.Writer, report *domain.AnalysisReport) error {
	if c.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	header := []string{"start_row", "end_row", "focal_type", "row_count", "start_time", "end_time", "color"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range report.MergedRanges {
		record := []string{
			strconv.Itoa(r.StartRow + 1),
			strconv.Itoa(r.EndRow + 1),
			r.FocalType,
			strconv.Itoa(r.RowCount),
			r.StartTime,
			r.EndTime,
			report.Colors[r.FocalType],
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write range record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteValidations writes the validation results, one line per issue
// or warning so downstream tools can filter by severity.
func (c *CSVWriter) WriteValidations(w io.Writer, report *domain.AnalysisReport) error {
	if c.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"check", "severity", "message"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, v := range report.Validations {
		if v.Passed && len(v.Warnings) == 0 {
			if err := cw.Write([]string{v.Check, "pass", ""}); err != nil {
				return fmt.Errorf("failed to write validation record: %w", err)
			}
			continue
		}
		for _, issue := range v.Issues {
			if err := cw.Write([]string{v.Check, "issue", issue}); err != nil {
				return fmt.Errorf("failed to write validation record: %w", err)
			}
		}
		for _, warning := range v.Warnings {
			if err := cw.Write([]string{v.Check, "warning", warning}); err != nil {
				return fmt.Errorf("failed to write validation record: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
