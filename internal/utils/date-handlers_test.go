package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	parsed, err := ParseDateOnly("2025-11-24")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())

	_, err = ParseDateOnly("24/11/2025")
	assert.Error(t, err)
}

func TestMonthDaySuffix(t *testing.T) {
	assert.Equal(t, "11_24", MonthDaySuffix("2025-11-24"))
	assert.Equal(t, "01_05", MonthDaySuffix("2026-01-05"))
	assert.Equal(t, "", MonthDaySuffix("bad"))
}
