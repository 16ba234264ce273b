package palette

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ethocli/pkg/contracts/domain"
)

func ranges(types ...string) []domain.FocalFollowRange {
	out := make([]domain.FocalFollowRange, len(types))
	for i, t := range types {
		out[i] = domain.FocalFollowRange{StartRow: i, EndRow: i, FocalType: t, RowCount: 1}
	}
	return out
}

func TestAssignColors(t *testing.T) {
	t.Run("empty input yields empty mapping", func(t *testing.T) {
		assert.Empty(t, AssignColors())
		assert.Empty(t, AssignColors(nil, nil))
	})

	t.Run("alphabetical assignment", func(t *testing.T) {
		got := AssignColors(ranges("DM", "DCC", "DLL"))

		require.Len(t, got, 3)
		assert.Equal(t, Colors[0], got["DCC"])
		assert.Equal(t, Colors[1], got["DLL"])
		assert.Equal(t, Colors[2], got["DM"])
	})

	t.Run("duplicate types assigned once", func(t *testing.T) {
		got := AssignColors(ranges("DLL", "DLL", "DLL"))

		require.Len(t, got, 1)
		assert.Equal(t, Colors[0], got["DLL"])
	})

	t.Run("type in either set gets the same color", func(t *testing.T) {
		merged := ranges("DCC", "DLL")
		original := ranges("DLL", "DM")

		both := AssignColors(merged, original)
		mergedOnly := AssignColors(merged)

		// DLL sorts after DCC in both invocations.
		assert.Equal(t, both["DLL"], mergedOnly["DLL"])
		assert.Equal(t, both["DCC"], mergedOnly["DCC"])
	})

	t.Run("palette cycles when types exceed its length", func(t *testing.T) {
		var types []string
		for i := 0; i < len(Colors)+2; i++ {
			types = append(types, fmt.Sprintf("T%02d", i))
		}

		got := AssignColors(ranges(types...))

		require.Len(t, got, len(Colors)+2)
		assert.Equal(t, Colors[0], got["T00"])
		assert.Equal(t, Colors[0], got[fmt.Sprintf("T%02d", len(Colors))])
		assert.Equal(t, Colors[1], got[fmt.Sprintf("T%02d", len(Colors)+1)])
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		set := ranges("DM", "DCC", "DLL", "UNKNOWN")
		assert.Equal(t, AssignColors(set), AssignColors(set))
	})
}
