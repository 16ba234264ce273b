package domain

import "time"

// FileSummary describes one ingested source file.
type FileSummary struct {
	FileName string `json:"file_name"`
	RowCount int    `json:"row_count"`
}

// AnalysisReport is the complete outcome of analyzing one batch of
// observation files: the merged focal-follow ranges, the ranges of each
// original file, the consistency check results, and a color per focal
// type shared by the merged and per-file views.
type AnalysisReport struct {
	AnalysisID   string                        `json:"analysis_id"`
	Files        []FileSummary                 `json:"files"`
	MergedRanges []FocalFollowRange            `json:"merged_ranges"`
	FileRanges   map[string][]FocalFollowRange `json:"file_ranges"`
	Validations  []ValidationResult            `json:"validations"`
	Colors       map[string]string             `json:"colors"`
	GeneratedAt  time.Time                     `json:"generated_at"`
}

// Passed reports whether every validation check passed.
func (r *AnalysisReport) Passed() bool {
	for _, v := range r.Validations {
		if !v.Passed {
			return false
		}
	}
	return true
}
