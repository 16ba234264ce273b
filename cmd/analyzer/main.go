package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ethocli/internal/config"
	"ethocli/internal/dataprocessing"
	"ethocli/internal/exporter"
	"ethocli/internal/files"
	"ethocli/internal/infrastructure"
	"ethocli/internal/services"
	"ethocli/internal/validation"
	"ethocli/pkg/contracts/domain"
)

func main() {
	dir := flag.String("dir", ".", "directory containing observation files (xlsx, xlsm, xls, csv)")
	out := flag.String("out", "", "output file path (defaults to stdout)")
	format := flag.String("format", "text", "output format: json | text | csv")
	flag.Parse()

	switch *format {
	case "json", "text", "csv":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q: want json, text or csv\n", *format)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	}
	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	ctx := context.Background()

	report, err := run(ctx, logger, *dir)
	if err != nil {
		logger.ErrorContext(ctx, "analysis failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create output file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := writeReport(w, report, *format); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write report: %v\n", err)
		os.Exit(1)
	}

	// CSV splits the report in two: ranges in the main output,
	// validations in a sibling file (or after a blank line on stdout).
	if *format == "csv" {
		if err := writeValidationsCSV(w, *out, report); err != nil {
			fmt.Fprintf(os.Stderr, "cannot write validations: %v\n", err)
			os.Exit(1)
		}
	}

	if !report.Passed() {
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dir string) (*domain.AnalysisReport, error) {
	discovery := files.NewDiscovery(".")
	found, err := discovery.FindObservationFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering files in %s: %w", dir, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no observation files in %s", dir)
	}

	fileValidator := validation.NewFileValidator(logger)
	sets := make([]domain.PerFileRowSet, 0, len(found))
	for _, info := range found {
		if err := fileValidator.ValidateObservationFile(info.Path); err != nil {
			return nil, err
		}
		set, err := dataprocessing.ParseObservationFile(info.Path)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	svc := services.NewAnalysisService(logger, nil)
	return svc.Analyze(ctx, sets), nil
}

// validationsPath derives the validations file name from the ranges
// file name: report.csv -> report_validations.csv.
func validationsPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + "_validations" + ext
}

// writeValidationsCSV writes the validation findings next to the
// ranges: into a sibling file when outPath is set, otherwise onto the
// same stream after a separating blank line.
func writeValidationsCSV(w io.Writer, outPath string, report *domain.AnalysisReport) error {
	cw := exporter.NewCSVWriter()
	if outPath == "" {
		fmt.Fprintln(w)
		return cw.WriteValidations(w, report)
	}

	f, err := os.Create(validationsPath(outPath))
	if err != nil {
		return err
	}
	defer f.Close()
	return cw.WriteValidations(f, report)
}

func writeReport(w io.Writer, report *domain.AnalysisReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "csv":
		return exporter.NewCSVWriter().WriteRanges(w, report)
	default:
		return writeTextReport(w, report)
	}
}

func writeTextReport(w io.Writer, report *domain.AnalysisReport) error {
	fmt.Fprintf(w, "Analysis %s\n\n", report.AnalysisID)

	fmt.Fprintf(w, "Files (%d):\n", len(report.Files))
	for _, f := range report.Files {
		fmt.Fprintf(w, "  %-40s %d rows, %d focal follows\n",
			f.FileName, f.RowCount, len(report.FileRanges[f.FileName]))
	}

	fmt.Fprintf(w, "\nMerged focal follows (%d):\n", len(report.MergedRanges))
	for _, r := range report.MergedRanges {
		fmt.Fprintf(w, "  rows %d-%d  %-12s %d rows", r.StartRow+1, r.EndRow+1, r.FocalType, r.RowCount)
		if color, ok := report.Colors[r.FocalType]; ok {
			fmt.Fprintf(w, "  %s", color)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nChecks:\n")
	for _, v := range report.Validations {
		status := "PASS"
		if !v.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  [%s] %s\n", status, v.Check)
		for _, issue := range v.Issues {
			fmt.Fprintf(w, "    issue: %s\n", issue)
		}
		for _, warning := range v.Warnings {
			fmt.Fprintf(w, "    warning: %s\n", warning)
		}
	}

	return nil
}
