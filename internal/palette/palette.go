// Package palette assigns display colors to focal types. Assignment is
// a pure function of the input range sets, so the merged view and the
// per-file views of the same dataset always agree on a type's color.
package palette

import (
	"sort"

	"ethocli/pkg/contracts/domain"
)

// Colors is the fixed ordered palette. Types beyond its length cycle
// back to the start.
var Colors = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// AssignColors maps every distinct focal type appearing in any of the
// given range sets to a palette color. Types are ordered alphabetically
// before assignment, so the mapping is deterministic and identical for
// a type regardless of which set it appears in.
func AssignColors(sets ...[]domain.FocalFollowRange) map[string]string {
	seen := make(map[string]bool)
	for _, set := range sets {
		for _, r := range set {
			seen[r.FocalType] = true
		}
	}

	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)

	colors := make(map[string]string, len(types))
	for i, t := range types {
		colors[t] = Colors[i%len(Colors)]
	}
	return colors
}
