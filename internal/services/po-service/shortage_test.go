package poService

import (
	"testing"

	"jnv-po/internal/db"

	"github.com/stretchr/testify/assert"
)

func TestExtractShortagesKeepsOnlyNegativeDeficits(t *testing.T) {
	rows := []map[string]interface{}{
		{"플랜트": "1021", "자재번호": "FG-001", "D0_D1부족": -50.0},
		{"플랜트": "1021", "자재번호": "FG-002", "D0_D1부족": 0.0},
		{"플랜트": "1021", "자재번호": "FG-003", "D0_D1부족": 120.0},
		{"플랜트": "1021", "자재번호": "FG-004", "D0_D1부족": -0.5},
	}

	shortages := ExtractShortages(rows)

	assert.Len(t, shortages, 2)
	assert.Equal(t, "FG-001", shortages[0].MaterialCode)
	assert.Equal(t, 50.0, shortages[0].ShortageQty)
	assert.Equal(t, "FG-004", shortages[1].MaterialCode)
	assert.Equal(t, 0.5, shortages[1].ShortageQty)
}

func TestExtractShortagesCoercesBadValuesToZero(t *testing.T) {
	rows := []map[string]interface{}{
		{"플랜트": "1021", "자재번호": "FG-001", "D0_D1부족": "not-a-number"},
		{"플랜트": "1021", "자재번호": "FG-002"},
		{"플랜트": "1021", "자재번호": "FG-003", "D0_D1부족": "-30"},
	}

	shortages := ExtractShortages(rows)

	assert.Len(t, shortages, 1)
	assert.Equal(t, "FG-003", shortages[0].MaterialCode)
	assert.Equal(t, 30.0, shortages[0].ShortageQty)
}

func TestExtractShortagesOnQueryShapedRows(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"플랜트":     db.CoerceColumnValue([]byte("1021"), true),
			"자재번호":    db.CoerceColumnValue([]byte("0071118"), true),
			"D0_D1부족": db.CoerceColumnValue([]byte("-50"), false),
		},
		{
			"플랜트":     db.CoerceColumnValue([]byte("1021"), true),
			"자재번호":    db.CoerceColumnValue([]byte("FG-002"), true),
			"D0_D1부족": db.CoerceColumnValue([]byte("0"), false),
		},
	}

	shortages := ExtractShortages(rows)

	assert.Len(t, shortages, 1)
	assert.Equal(t, "1021", shortages[0].Plant)
	assert.Equal(t, "0071118", shortages[0].MaterialCode)
	assert.Equal(t, 50.0, shortages[0].ShortageQty)
}

func TestExtractShortagesNormalizesNumericCodes(t *testing.T) {
	rows := []map[string]interface{}{
		{"플랜트": 1021.0, "자재번호": 71118.0, "D0_D1부족": -10.0},
	}

	shortages := ExtractShortages(rows)

	assert.Len(t, shortages, 1)
	assert.Equal(t, "1021", shortages[0].Plant)
	assert.Equal(t, "71118", shortages[0].MaterialCode)
}
