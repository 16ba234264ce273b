package observation

import "strings"

const (
	// startMarkerPrefix opens a focal follow; the token after it names
	// the focal type (for example "F: DLL"). The prefix match is
	// case-sensitive.
	startMarkerPrefix = "F:"

	// endMarkerWord closes an open focal follow. Matched
	// case-insensitively as a prefix, so "end", "End of follow" and
	// "END" all qualify.
	endMarkerWord = "end"

	// defaultFocalType is used when a start marker carries no type
	// token ("F:" with nothing after it).
	defaultFocalType = "UNKNOWN"
)

// isStartMarker reports whether the trimmed observation text opens a
// focal follow.
func isStartMarker(text string) bool {
	return strings.HasPrefix(text, startMarkerPrefix)
}

// isEndMarker reports whether the trimmed observation text closes a
// focal follow. A leading start marker is stripped first, so a combined
// row like "F: end" registers as both a start and an end; the extractor
// relies on evaluating the start side before the end side.
func isEndMarker(text string) bool {
	if isStartMarker(text) {
		text = strings.TrimSpace(strings.TrimPrefix(text, startMarkerPrefix))
	}
	return len(text) >= len(endMarkerWord) &&
		strings.EqualFold(text[:len(endMarkerWord)], endMarkerWord)
}

// focalTypeOf extracts the focal type from a start-marker row: the
// first whitespace-delimited token following "F:".
func focalTypeOf(text string) string {
	fields := strings.Fields(strings.TrimPrefix(text, startMarkerPrefix))
	if len(fields) == 0 {
		return defaultFocalType
	}
	return fields[0]
}
