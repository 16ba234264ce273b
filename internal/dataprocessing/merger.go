package dataprocessing

import (
	"ethocli/pkg/contracts/domain"
)

// Merger concatenates per-file row sets into the single merged row set
// the analysis core scans. Files are merged in the order given; row
// order is load-bearing downstream (it defines "consecutive" for the
// validator and marker adjacency for the extractor), so the merger
// never reorders anything.
type Merger struct{}

// NewMerger creates a new merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge returns all rows from the given sets, in set order. The input
// sets are not mutated and their row slices are not aliased.
func (m *Merger) Merge(sets []domain.PerFileRowSet) []domain.Row {
	total := 0
	for _, set := range sets {
		total += len(set.Rows)
	}

	merged := make([]domain.Row, 0, total)
	for _, set := range sets {
		merged = append(merged, set.Rows...)
	}
	return merged
}

// MergeStatistics describes one merge operation.
type MergeStatistics struct {
	FilesMerged int
	TotalRows   int
	RowsPerFile map[string]int
}

// MergeWithStats performs the merge and reports per-file counters.
func (m *Merger) MergeWithStats(sets []domain.PerFileRowSet) ([]domain.Row, MergeStatistics) {
	merged := m.Merge(sets)

	stats := MergeStatistics{
		FilesMerged: len(sets),
		TotalRows:   len(merged),
		RowsPerFile: make(map[string]int, len(sets)),
	}
	for _, set := range sets {
		stats.RowsPerFile[set.FileName] = len(set.Rows)
	}

	return merged, stats
}
