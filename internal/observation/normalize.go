package observation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"ethocli/pkg/contracts/domain"
)

const (
	// serialEpochOffsetDays is the distance between the spreadsheet
	// serial-date epoch (1899-12-30) and the Unix epoch, in days.
	serialEpochOffsetDays = 25569

	// serialEpsilon is added to the fractional day before truncating to
	// whole seconds. Serial values round-trip through binary floating
	// point, and without the nudge a value like 0.499999999 truncates
	// one second short of the intended 12:00:00.
	serialEpsilon = 1e-7

	secondsPerDay = 24 * 60 * 60
)

// clockPattern matches an embedded H:MM:SS or HH:MM:SS time of day.
var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}:\d{2}`)

// NormalizeTime converts a heterogeneous timestamp cell into a display
// string. Numeric cells (and numeric-looking strings) are decoded as
// spreadsheet serial dates and rendered as a zero-padded HH:MM:SS clock
// in UTC. Other strings yield the first embedded clock pattern
// verbatim, and anything else degrades to the cell's literal textual
// form. The function never fails; empty or nil input yields "".
func NormalizeTime(cell domain.Cell) string {
	if cell == nil {
		return ""
	}
	text := domain.CellText(cell)
	if text == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		if clock, ok := serialClock(serial); ok {
			return clock
		}
	}

	if match := clockPattern.FindString(text); match != "" {
		return match
	}

	return text
}

// serialClock renders the time-of-day component of a spreadsheet serial
// date. It reports false for values that do not decode to a valid date,
// in which case the caller falls back to string handling.
func serialClock(serial float64) (string, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return "", false
	}
	days := math.Floor(serial)
	if days < 0 || days-serialEpochOffsetDays > math.MaxInt32 {
		return "", false
	}

	total := int((serial - days + serialEpsilon) * secondsPerDay)
	// The epsilon can push a value sitting just short of midnight over
	// the day boundary; roll it the way date construction would.
	total %= secondsPerDay

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s), true
}
