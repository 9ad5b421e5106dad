package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceColumnValueTextColumnKeepsExactString(t *testing.T) {
	assert.Equal(t, ".0", CoerceColumnValue([]byte(".0"), true))
	assert.Equal(t, ".1", CoerceColumnValue([]byte(".1"), true))
	assert.Equal(t, "0012", CoerceColumnValue([]byte("0012"), true))
	assert.Equal(t, "Vendor One", CoerceColumnValue([]byte("Vendor One"), true))
	assert.Equal(t, "", CoerceColumnValue([]byte(""), true))
}

func TestCoerceColumnValueNumericColumnParsesFloat(t *testing.T) {
	assert.Equal(t, 1234.5, CoerceColumnValue([]byte("1234.5"), false))
	assert.Equal(t, -50.0, CoerceColumnValue([]byte("-50"), false))
	assert.Equal(t, 0.0, CoerceColumnValue([]byte("0"), false))
	assert.Equal(t, "n/a", CoerceColumnValue([]byte("n/a"), false))
}

func TestCoerceColumnValueNormalizesStoredUuid(t *testing.T) {
	coerced := CoerceColumnValue([]byte("6BA7B810-9DAD-11D1-80B4-00C04FD430C8"), true)

	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", coerced)
}

func TestCoerceColumnValuePassesNonByteValuesThrough(t *testing.T) {
	assert.Equal(t, 7.5, CoerceColumnValue(7.5, false))
	assert.Equal(t, 3, CoerceColumnValue(int32(3), false))
	assert.Nil(t, CoerceColumnValue(nil, true))
}
