package observation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"ethocli/pkg/contracts/domain"
)

// Check names, in the fixed order RunAllValidations reports them.
const (
	CheckTimestampGranularity = "timestamp_granularity"
	CheckSampleInterval       = "sample_interval"
	CheckMarkerBalance        = "marker_balance"
)

const (
	// minWholeMinuteRun is the shortest run of consecutive whole-minute
	// timestamps worth reporting. Shorter runs occur naturally; longer
	// ones usually mean seconds were stripped during export.
	minWholeMinuteRun = 3

	// Point samples (X/Y scan rows) are taken on a 2.5-minute cadence.
	minSampleIntervalMinutes      = 2.0
	maxSampleIntervalMinutes      = 3.0
	expectedSampleIntervalMinutes = 2.5
	sampleIntervalTolerance       = 0.5
)

// wholeMinutePattern matches a textual timestamp whose seconds field is
// literally "00", e.g. anything ending in ":34:00".
var wholeMinutePattern = regexp.MustCompile(`:\d{2}:00$`)

// genericTimeLayouts are tried in order when parsing a point-sample
// timestamp. Serial numbers deliberately do not parse here; rows whose
// timestamps fail every layout are excluded from the interval analysis.
var genericTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"15:04:05",
	"15:04",
}

// RunAllValidations runs the three consistency checks over the merged
// dataset and returns their results in fixed order: timestamp
// granularity, sample interval, marker balance. It always returns
// exactly three results, each with Passed reflecting an empty issue
// list.
func RunAllValidations(merged []domain.Row, perFile []domain.PerFileRowSet) []domain.ValidationResult {
	return []domain.ValidationResult{
		CheckWholeMinuteRuns(merged),
		CheckSampleIntervals(merged),
		CheckMarkerBalancePerFile(perFile),
	}
}

// CheckWholeMinuteRuns flags runs of three or more consecutive rows
// whose timestamp text ends on a whole minute. Observation software
// records to the second, so a long whole-minute run indicates the
// source file lost its seconds granularity.
func CheckWholeMinuteRuns(rows []domain.Row) domain.ValidationResult {
	var issues []string

	run := 0
	flush := func(next int) {
		// next is the index of the first row after the run.
		if run >= minWholeMinuteRun {
			issues = append(issues, fmt.Sprintf(
				"rows %d-%d: %d consecutive rows with whole-minute timestamps",
				next-run+1, next, run))
		}
		run = 0
	}

	for i, row := range rows {
		if wholeMinutePattern.MatchString(row.Text(domain.TimestampColumn)) {
			run++
			continue
		}
		flush(i)
	}
	flush(len(rows))

	return newResult(CheckTimestampGranularity, issues, nil)
}

// pointSample is one scan-sample row admitted to the interval analysis.
type pointSample struct {
	rowIndex int
	at       time.Time
}

// CheckSampleIntervals verifies the cadence of point-sample rows (those
// whose observation text starts with "X" or "Y"). Each consecutive pair
// must be 2-3 minutes apart; the overall average must sit within half a
// minute of the expected 2.5-minute cadence, reported as a warning
// rather than an issue when it drifts.
func CheckSampleIntervals(rows []domain.Row) domain.ValidationResult {
	var samples []pointSample
	for i, row := range rows {
		text := strings.TrimSpace(row.Text(domain.ObservationColumn))
		if !strings.HasPrefix(text, "X") && !strings.HasPrefix(text, "Y") {
			continue
		}
		at, ok := parseSampleTime(row.Text(domain.TimestampColumn))
		if !ok {
			// Unparseable timestamps are excluded, not reported.
			continue
		}
		samples = append(samples, pointSample{rowIndex: i, at: at})
	}

	var issues, warnings []string

	for j := 1; j < len(samples); j++ {
		prev, cur := samples[j-1], samples[j]
		minutes := cur.at.Sub(prev.at).Minutes()
		switch {
		case minutes < minSampleIntervalMinutes:
			issues = append(issues, fmt.Sprintf(
				"interval between rows %d and %d is too short: %.2f minutes",
				prev.rowIndex+1, cur.rowIndex+1, minutes))
		case minutes > maxSampleIntervalMinutes:
			issues = append(issues, fmt.Sprintf(
				"interval between rows %d and %d is too long: %.2f minutes",
				prev.rowIndex+1, cur.rowIndex+1, minutes))
		}
	}

	if len(samples) >= 2 {
		span := samples[len(samples)-1].at.Sub(samples[0].at).Minutes()
		avg := span / float64(len(samples)-1)
		if math.Abs(avg-expectedSampleIntervalMinutes) > sampleIntervalTolerance {
			warnings = append(warnings, fmt.Sprintf(
				"average sample interval is %.2f minutes across %d samples spanning %.1f minutes (expected %.1f)",
				avg, len(samples), span, expectedSampleIntervalMinutes))
		}
	}

	return newResult(CheckSampleInterval, issues, warnings)
}

// CheckMarkerBalancePerFile counts start and end markers independently
// within each source file and flags files where the counts differ. The
// counts use the same marker predicates as the extractor, so a combined
// "F: end" row contributes to both sides.
func CheckMarkerBalancePerFile(sets []domain.PerFileRowSet) domain.ValidationResult {
	var issues []string

	for _, set := range sets {
		starts, ends := 0, 0
		for _, row := range set.Rows {
			text := strings.TrimSpace(row.Text(domain.ObservationColumn))
			if isStartMarker(text) {
				starts++
			}
			if isEndMarker(text) {
				ends++
			}
		}
		if starts != ends {
			issues = append(issues, fmt.Sprintf(
				"%s: %d start markers vs %d end markers",
				set.FileName, starts, ends))
		}
	}

	return newResult(CheckMarkerBalance, issues, nil)
}

// parseSampleTime parses a timestamp string with the generic layout
// list. Unlike NormalizeTime it never interprets serial numbers.
func parseSampleTime(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range genericTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// newResult builds a ValidationResult with non-nil slices so that JSON
// consumers always see arrays.
func newResult(check string, issues, warnings []string) domain.ValidationResult {
	if issues == nil {
		issues = []string{}
	}
	if warnings == nil {
		warnings = []string{}
	}
	return domain.ValidationResult{
		Check:    check,
		Passed:   len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
	}
}
