package dataprocessing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ethocli/pkg/contracts/domain"
)

// writeTestWorkbook builds an observation workbook on disk with one
// serial timestamp column and one observation code column.
func writeTestWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells := []struct {
		axis  string
		value interface{}
	}{
		{"A1", "obs"}, {"B1", 45123.5}, {"C1", "F: DLL"},
		{"A2", "obs"}, {"B2", 45123.5 + 150.0/86400.0}, {"C2", "feeding"},
		{"A3", "obs"}, {"B3", "10:05:00"}, {"C3", "end"},
	}
	for _, c := range cells {
		require.NoError(t, f.SetCellValue(sheet, c.axis, c.value))
	}

	path := filepath.Join(dir, "morning_follow.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseWorkbook(t *testing.T) {
	path := writeTestWorkbook(t, t.TempDir())

	set, err := ParseWorkbook(path)

	require.NoError(t, err)
	assert.Equal(t, "morning_follow.xlsx", set.FileName)
	require.Len(t, set.Rows, 3)

	// Numeric cells come through typed so the normalizer can decode
	// serial dates.
	ts, ok := set.Rows[0].Cell(domain.TimestampColumn).(float64)
	require.True(t, ok, "serial timestamp should be float64")
	assert.InDelta(t, 45123.5, ts, 1e-9)

	// Text cells stay strings.
	assert.Equal(t, "F: DLL", set.Rows[0].Text(domain.ObservationColumn))
	assert.Equal(t, "10:05:00", set.Rows[2].Text(domain.TimestampColumn))
	assert.Equal(t, "end", set.Rows[2].Text(domain.ObservationColumn))
}

func TestParseWorkbook_MissingFile(t *testing.T) {
	_, err := ParseWorkbook(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRows int
		verify   func(t *testing.T, set domain.PerFileRowSet)
	}{
		{
			name: "plain observation rows",
			content: "obs,10:00:00,F: DLL\n" +
				"obs,10:01:00,feeding\n" +
				"obs,10:02:00,end\n",
			wantRows: 3,
			verify: func(t *testing.T, set domain.PerFileRowSet) {
				assert.Equal(t, "F: DLL", set.Rows[0].Text(domain.ObservationColumn))
				assert.Equal(t, "10:02:00", set.Rows[2].Text(domain.TimestampColumn))
			},
		},
		{
			name:     "ragged rows are tolerated",
			content:  "obs,10:00:00,F: DLL,extra,cols\nobs\n,,end\n",
			wantRows: 3,
			verify: func(t *testing.T, set domain.PerFileRowSet) {
				assert.Equal(t, "", set.Rows[1].Text(domain.ObservationColumn))
				assert.Equal(t, "end", set.Rows[2].Text(domain.ObservationColumn))
			},
		},
		{
			name:     "empty cells become nil",
			content:  "obs,,feeding\n",
			wantRows: 1,
			verify: func(t *testing.T, set domain.PerFileRowSet) {
				assert.Nil(t, set.Rows[0].Cell(domain.TimestampColumn))
			},
		},
		{
			name:     "quoted fields",
			content:  "obs,\"10:00:00\",\"F: DLL, juvenile\"\n",
			wantRows: 1,
			verify: func(t *testing.T, set domain.PerFileRowSet) {
				assert.Equal(t, "F: DLL, juvenile", set.Rows[0].Text(domain.ObservationColumn))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "follow.csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			set, err := ParseCSV(path)

			require.NoError(t, err)
			assert.Equal(t, "follow.csv", set.FileName)
			require.Len(t, set.Rows, tt.wantRows)
			if tt.verify != nil {
				tt.verify(t, set)
			}
		})
	}
}

func TestParseObservationFile_Dispatch(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "follow.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("obs,10:00:00,X scan\n"), 0644))

	set, err := ParseObservationFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, "follow.csv", set.FileName)

	xlsxPath := writeTestWorkbook(t, dir)
	set, err = ParseObservationFile(xlsxPath)
	require.NoError(t, err)
	assert.Len(t, set.Rows, 3)

	_, err = ParseObservationFile(filepath.Join(dir, "notes.txt"))
	assert.ErrorContains(t, err, "unsupported observation file type")
}
