package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethocli/pkg/contracts/domain"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		AnalysisID: "abc",
		MergedRanges: []domain.FocalFollowRange{
			{StartRow: 2, EndRow: 5, FocalType: "DLL", RowCount: 4, StartTime: "09:00:02", EndTime: "09:04:01"},
			{StartRow: 8, EndRow: 8, FocalType: "UNKNOWN", RowCount: 1},
		},
		Colors: map[string]string{"DLL": "#4E79A7", "UNKNOWN": "#F28E2B"},
		Validations: []domain.ValidationResult{
			{Check: "timestamp_granularity", Passed: true, Issues: []string{}, Warnings: []string{}},
			{Check: "sample_interval", Passed: true, Issues: []string{}, Warnings: []string{"average sample interval is 3.10 minutes across 5 samples spanning 12.4 minutes (expected 2.5)"}},
			{Check: "marker_balance", Passed: false, Issues: []string{"a.xlsx: 2 start markers vs 1 end markers"}, Warnings: []string{}},
		},
	}
}

func TestWriteRanges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter().WriteRanges(&buf, sampleReport()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, string([]byte{0xEF, 0xBB, 0xBF})), "expected UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\xef\xbb\xbf")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "start_row,end_row,focal_type,row_count,start_time,end_time,color", lines[0])
	assert.Equal(t, "3,6,DLL,4,09:00:02,09:04:01,#4E79A7", lines[1])
	assert.Equal(t, "9,9,UNKNOWN,1,,,#F28E2B", lines[2])
}

func TestWriteRangesWithoutBOM(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{BOMPrefix: false}
	require.NoError(t, w.WriteRanges(&buf, sampleReport()))
	assert.True(t, strings.HasPrefix(buf.String(), "start_row,"))
}

func TestWriteValidations(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{BOMPrefix: false}
	require.NoError(t, w.WriteValidations(&buf, sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "check,severity,message", lines[0])
	assert.Equal(t, "timestamp_granularity,pass,", lines[1])
	assert.Contains(t, lines[2], "sample_interval,warning,")
	assert.Contains(t, lines[3], "marker_balance,issue,")
}
