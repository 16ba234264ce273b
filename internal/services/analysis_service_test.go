package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethocli/internal/observation"
	"ethocli/pkg/contracts/domain"
)

func testRow(timestamp domain.Cell, code string) domain.Row {
	return domain.Row{nil, timestamp, code}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalysisService_Analyze(t *testing.T) {
	sets := []domain.PerFileRowSet{
		{
			FileName: "morning.xlsx",
			Rows: []domain.Row{
				testRow("9:00:02", "F: DLL"),
				testRow("9:02:03", "groom"),
				testRow("9:04:01", "end"),
			},
		},
		{
			FileName: "afternoon.xlsx",
			Rows: []domain.Row{
				testRow("13:00:02", "F: VWM"),
				testRow("13:02:30", "rest"),
				testRow("13:05:01", "end"),
			},
		},
	}

	svc := NewAnalysisService(testLogger(), nil)
	report := svc.Analyze(context.Background(), sets)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.AnalysisID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.True(t, report.Passed())

	require.Len(t, report.Files, 2)
	assert.Equal(t, "morning.xlsx", report.Files[0].FileName)
	assert.Equal(t, 3, report.Files[0].RowCount)

	// Per-file ranges use file-local indices; merged ranges use
	// merged indices.
	require.Len(t, report.FileRanges["morning.xlsx"], 1)
	assert.Equal(t, 0, report.FileRanges["morning.xlsx"][0].StartRow)
	assert.Equal(t, "DLL", report.FileRanges["morning.xlsx"][0].FocalType)

	require.Len(t, report.MergedRanges, 2)
	assert.Equal(t, 0, report.MergedRanges[0].StartRow)
	assert.Equal(t, 2, report.MergedRanges[0].EndRow)
	assert.Equal(t, 3, report.MergedRanges[1].StartRow)
	assert.Equal(t, 5, report.MergedRanges[1].EndRow)
	assert.Equal(t, "VWM", report.MergedRanges[1].FocalType)

	require.Len(t, report.Validations, 3)
	assert.Equal(t, observation.CheckTimestampGranularity, report.Validations[0].Check)
	assert.Equal(t, observation.CheckSampleInterval, report.Validations[1].Check)
	assert.Equal(t, observation.CheckMarkerBalance, report.Validations[2].Check)

	// Both focal types got a color, and colors are stable across the
	// merged and per-file views.
	assert.Contains(t, report.Colors, "DLL")
	assert.Contains(t, report.Colors, "VWM")
}

func TestAnalysisService_AnalyzeEmpty(t *testing.T) {
	svc := NewAnalysisService(testLogger(), nil)
	report := svc.Analyze(context.Background(), nil)
	require.NotNil(t, report)

	assert.Empty(t, report.Files)
	assert.Empty(t, report.MergedRanges)
	assert.Empty(t, report.Colors)
	require.Len(t, report.Validations, 3)
	assert.True(t, report.Passed())
}

func TestAnalysisService_AnalyzeReportsFailures(t *testing.T) {
	// Unbalanced markers in one file fail the marker balance check.
	sets := []domain.PerFileRowSet{
		{
			FileName: "broken.xlsx",
			Rows: []domain.Row{
				testRow("9:00:02", "F: DLL"),
				testRow("9:02:03", "groom"),
			},
		},
	}

	svc := NewAnalysisService(testLogger(), nil)
	report := svc.Analyze(context.Background(), sets)

	assert.False(t, report.Passed())
	assert.False(t, report.Validations[2].Passed)
	assert.Contains(t, report.Validations[2].Issues[0], "broken.xlsx")
}
