package poService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPriceMapLastRowWins(t *testing.T) {
	rows := []map[string]interface{}{
		{"자재번호": "a", "단가": 100.0},
		{"자재번호": "b", "단가": 7.5},
		{"자재번호": "a", "단가": 120.0},
	}

	priceMap := BuildPriceMap(rows)

	assert.Equal(t, 120.0, priceMap["a"])
	assert.Equal(t, 7.5, priceMap["b"])
}

func TestApplyPricesDefaultsMissingPriceToZero(t *testing.T) {
	lines := []AggregatedLine{
		{MaterialCode: "a", OrderQty: 300},
		{MaterialCode: "unknown", OrderQty: 100},
	}

	priced := ApplyPrices(lines, map[string]float64{"a": 2.5})

	assert.Equal(t, 2.5, priced[0].UnitPrice)
	assert.Equal(t, 750.0, priced[0].Amount)
	assert.Equal(t, 0.0, priced[1].UnitPrice)
	assert.Equal(t, 0.0, priced[1].Amount)
}
