// Package dataprocessing reads behavioral-observation sheets into the
// shared row model and merges multiple source files into the single
// ordered row set the analysis core operates on.
//
// # Architecture
//
// The package has two components:
//
// 1. Parser: reads Excel workbooks (excelize) and CSV exports into rows
// 2. Merger: concatenates per-file row sets in file order
//
// Basic usage:
//
//	set, err := dataprocessing.ParseObservationFile("morning_follow.xlsx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	merged := dataprocessing.NewMerger().Merge([]domain.PerFileRowSet{set})
//
// Per-file row sets are preserved alongside the merge because the
// marker-balance check needs file boundaries, which the merged set no
// longer carries.
//
// Cells keep their source type: numeric workbook cells (including
// serial-date timestamps) arrive as float64, text as string, and empty
// cells as nil. CSV files are untyped, so every non-empty CSV cell is a
// string.
package dataprocessing
