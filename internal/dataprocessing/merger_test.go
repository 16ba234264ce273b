package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethocli/pkg/contracts/domain"
)

func rowSet(name string, codes ...string) domain.PerFileRowSet {
	rows := make([]domain.Row, len(codes))
	for i, code := range codes {
		rows[i] = domain.Row{nil, "10:00:00", code}
	}
	return domain.PerFileRowSet{FileName: name, Rows: rows}
}

func TestMerger_Merge(t *testing.T) {
	tests := []struct {
		name      string
		sets      []domain.PerFileRowSet
		wantCodes []string
	}{
		{
			name:      "no sets",
			sets:      nil,
			wantCodes: []string{},
		},
		{
			name:      "single set passes through",
			sets:      []domain.PerFileRowSet{rowSet("a.csv", "F: DLL", "end")},
			wantCodes: []string{"F: DLL", "end"},
		},
		{
			name: "sets concatenate in order",
			sets: []domain.PerFileRowSet{
				rowSet("a.csv", "F: DLL", "end"),
				rowSet("b.csv", "X scan"),
				rowSet("c.csv", "F: DCC", "feeding", "end"),
			},
			wantCodes: []string{"F: DLL", "end", "X scan", "F: DCC", "feeding", "end"},
		},
		{
			name: "empty sets contribute nothing",
			sets: []domain.PerFileRowSet{
				rowSet("a.csv"),
				rowSet("b.csv", "F: DM"),
			},
			wantCodes: []string{"F: DM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := NewMerger().Merge(tt.sets)

			require.Len(t, merged, len(tt.wantCodes))
			for i, want := range tt.wantCodes {
				assert.Equal(t, want, merged[i].Text(domain.ObservationColumn))
			}
		})
	}
}

func TestMerger_MergeDoesNotAliasInput(t *testing.T) {
	sets := []domain.PerFileRowSet{rowSet("a.csv", "F: DLL", "end")}

	merged := NewMerger().Merge(sets)
	merged = append(merged, domain.Row{nil, "11:00:00", "X scan"})

	assert.Len(t, sets[0].Rows, 2)
	assert.Equal(t, "end", sets[0].Rows[1].Text(domain.ObservationColumn))
}

func TestMerger_MergeWithStats(t *testing.T) {
	sets := []domain.PerFileRowSet{
		rowSet("a.csv", "F: DLL", "feeding", "end"),
		rowSet("b.csv", "X scan", "Y scan"),
	}

	merged, stats := NewMerger().MergeWithStats(sets)

	assert.Len(t, merged, 5)
	assert.Equal(t, 2, stats.FilesMerged)
	assert.Equal(t, 5, stats.TotalRows)
	assert.Equal(t, map[string]int{"a.csv": 3, "b.csv": 2}, stats.RowsPerFile)
}
