package poService

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPoNumberFirstRunIncrementsBase(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "po_number_state.json")

	poNo, err := GetPoNumber("2025-11-24", stateFile)

	require.NoError(t, err)
	assert.Equal(t, int64(defaultPoNo+1), poNo)
	assert.FileExists(t, stateFile)
}

func TestGetPoNumberSameDateIsIdempotent(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "po_number_state.json")

	first, err := GetPoNumber("2025-11-24", stateFile)
	require.NoError(t, err)

	stat, err := os.Stat(stateFile)
	require.NoError(t, err)

	second, err := GetPoNumber("2025-11-24", stateFile)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The state file is not rewritten on a same-date re-run.
	statAfter, err := os.Stat(stateFile)
	require.NoError(t, err)
	assert.Equal(t, stat.ModTime(), statAfter.ModTime())
}

func TestGetPoNumberNextDateAdvancesByOne(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "po_number_state.json")

	first, err := GetPoNumber("2025-11-24", stateFile)
	require.NoError(t, err)

	second, err := GetPoNumber("2025-11-25", stateFile)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	// Going back to the previous date still advances: only an identical date
	// reuses the stored number.
	third, err := GetPoNumber("2025-11-24", stateFile)
	require.NoError(t, err)
	assert.Equal(t, second+1, third)
}

func TestGetPoNumberCorruptStateFileFails(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "po_number_state.json")
	require.NoError(t, os.WriteFile(stateFile, []byte("{not json"), 0644))

	_, err := GetPoNumber("2025-11-24", stateFile)

	assert.Error(t, err)
}
