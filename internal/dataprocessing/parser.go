package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"ethocli/pkg/contracts/domain"
)

// ParseObservationFile reads one observation source file into a
// per-file row set, dispatching on the file extension.
func ParseObservationFile(path string) (domain.PerFileRowSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return ParseWorkbook(path)
	case ".csv":
		return ParseCSV(path)
	default:
		return domain.PerFileRowSet{}, fmt.Errorf("unsupported observation file type: %s", filepath.Base(path))
	}
}

// ParseWorkbook reads an observation Excel workbook and extracts its
// rows. Numeric cells (serial-date timestamps included) are kept as
// float64 so the normalizer can decode them; text cells stay strings
// and empty cells are nil.
func ParseWorkbook(path string) (domain.PerFileRowSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.PerFileRowSet{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	// Observation exports carry a single data sheet, but templated
	// workbooks sometimes lead with an empty cover sheet. Take the
	// first sheet that has rows.
	var sheetName string
	var raw [][]string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil || len(rows) == 0 {
			continue
		}
		sheetName = name
		raw = rows
		break
	}
	if sheetName == "" {
		return domain.PerFileRowSet{}, fmt.Errorf("no data sheet found in %s", filepath.Base(path))
	}

	slog.Debug("Parsed observation sheet",
		slog.String("file", filepath.Base(path)),
		slog.String("sheet_name", sheetName),
		slog.Int("total_rows", len(raw)))

	rows := make([]domain.Row, len(raw))
	for i, rawRow := range raw {
		row := make(domain.Row, len(rawRow))
		for j, text := range rawRow {
			row[j] = workbookCell(f, sheetName, j, i, text)
		}
		rows[i] = row
	}

	return domain.PerFileRowSet{FileName: filepath.Base(path), Rows: rows}, nil
}

// workbookCell converts one raw cell to the domain cell type. Column
// and row are 0-based.
func workbookCell(f *excelize.File, sheet string, col, row int, text string) domain.Cell {
	if text == "" {
		return nil
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return text
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return text
	}

	switch cellType {
	case excelize.CellTypeNumber, excelize.CellTypeDate:
		if num, err := strconv.ParseFloat(text, 64); err == nil {
			return num
		}
	}
	return text
}

// ParseCSV reads an observation CSV export. CSV carries no type
// information, so every non-empty cell is a string; the normalizer
// handles numeric-looking timestamp strings downstream.
func ParseCSV(path string) (domain.PerFileRowSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PerFileRowSet{}, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // observation rows vary in width
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return domain.PerFileRowSet{}, fmt.Errorf("failed to read CSV %s: %w", filepath.Base(path), err)
	}

	rows := make([]domain.Row, len(records))
	for i, record := range records {
		row := make(domain.Row, len(record))
		for j, text := range record {
			if text == "" {
				continue // leave nil
			}
			row[j] = text
		}
		rows[i] = row
	}

	return domain.PerFileRowSet{FileName: filepath.Base(path), Rows: rows}, nil
}
