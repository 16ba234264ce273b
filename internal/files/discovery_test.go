package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestDiscovery_FindObservationFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "session_02.xlsx")
	touch(t, dir, "session_01.csv")
	touch(t, dir, "notes.txt")
	touch(t, dir, "~$session_02.xlsx")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	found, err := NewDiscovery(dir).FindObservationFiles(".")

	require.NoError(t, err)
	require.Len(t, found, 2)
	// Sorted by name so merge order follows session order.
	assert.Equal(t, "session_01.csv", found[0].Name)
	assert.Equal(t, "session_02.xlsx", found[1].Name)
}

func TestDiscovery_FindObservationFiles_AbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "follow.xlsx")

	found, err := NewDiscovery("/elsewhere").FindObservationFiles(dir)

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(dir, "follow.xlsx"), found[0].Path)
}

func TestDiscovery_FindObservationFiles_MissingDir(t *testing.T) {
	_, err := NewDiscovery(t.TempDir()).FindObservationFiles("absent")
	assert.Error(t, err)
}

func TestDiscovery_FindFilesByPattern(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "session_01.csv")
	touch(t, dir, "session_02.csv")
	touch(t, dir, "summary.json")

	found, err := NewDiscovery(dir).FindFilesByPattern(".", "session_*.csv")

	require.NoError(t, err)
	assert.Len(t, found, 2)
}
