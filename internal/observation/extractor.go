package observation

import (
	"strings"

	"ethocli/pkg/contracts/domain"
)

// openSegment is the scan state of an in-progress focal follow. A nil
// *openSegment means no follow is open, which makes the "unmatched end
// is a no-op" rule explicit: there is nothing to close.
type openSegment struct {
	startRow  int
	focalType string
}

// ExtractRanges scans rows once, in order, and returns the focal-follow
// segments delimited by start and end markers in the observation
// column. Edge-case policy:
//
//   - A start marker while a follow is already open closes the open
//     follow at the previous row, then opens the new one.
//   - An end marker with no open follow is ignored.
//   - A row carrying both markers ("F: end ...") is processed start
//     first, so it opens and immediately closes a one-row segment.
//   - A follow still open at end of input is dropped.
//
// The input is never mutated, and re-running on the same rows yields an
// identical result.
func ExtractRanges(rows []domain.Row) []domain.FocalFollowRange {
	ranges := []domain.FocalFollowRange{}
	var open *openSegment

	seal := func(seg *openSegment, endRow int) {
		ranges = append(ranges, domain.FocalFollowRange{
			StartRow:  seg.startRow,
			EndRow:    endRow,
			FocalType: seg.focalType,
			RowCount:  endRow - seg.startRow + 1,
			StartTime: NormalizeTime(rows[seg.startRow].Cell(domain.TimestampColumn)),
			EndTime:   NormalizeTime(rows[endRow].Cell(domain.TimestampColumn)),
		})
	}

	for i, row := range rows {
		text := strings.TrimSpace(row.Text(domain.ObservationColumn))

		if isStartMarker(text) {
			if open != nil {
				// Unmatched start: the previous follow ends on the row
				// just before this one.
				seal(open, i-1)
			}
			open = &openSegment{startRow: i, focalType: focalTypeOf(text)}
		}

		if isEndMarker(text) && open != nil {
			seal(open, i)
			open = nil
		}
	}

	// A follow with no closing marker is dropped, not emitted.
	return ranges
}
