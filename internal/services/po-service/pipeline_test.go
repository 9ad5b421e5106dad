package poService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end over the pure stages: one short finished good, one purchased
// component, partial stock coverage, pack rounding, bulk rounding, pricing.
func TestPipelineEndToEnd(t *testing.T) {
	planRows := []map[string]interface{}{
		{"플랜트": "1021", "자재번호": "X", "D0_D1부족": -50.0},
	}
	bomRows := []map[string]interface{}{
		bomRow(".0", "X", "finished good X", 1, 1, "E", "", "", "", ""),
		bomRow(".1", "Y", "component Y", 2, 1, "F", "V1", "Vendor One", "", ""),
	}
	stockRows := []map[string]interface{}{
		{"플랜트": "1021", "자재번호": "Y", "재고수량": 20.0},
	}
	stdRows := []map[string]interface{}{
		{"플랜트": "1021", "자재번호": "Y", "적입수량": 30.0, "최소재고": 0.0, "구매처": "P-01"},
	}
	priceRows := []map[string]interface{}{
		{"자재번호": "Y", "단가": 5.0},
	}

	shortages := ExtractShortages(planRows)
	require.Len(t, shortages, 1)

	children, itemInfo := BuildBomIndex(bomRows)
	lines := ResolveRequirements(shortages, children)
	require.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].RequiredQty) // 50 x 2 x 1

	lines = NetInventory(lines, BuildStockMap(stockRows))
	assert.Equal(t, 80.0, lines[0].NetShortageQty) // 100 - 20

	lines = ApplyLotSizing(lines, BuildStandardInfoMap(stdRows))
	require.Len(t, lines, 1)
	assert.Equal(t, int64(90), lines[0].OrderQty) // ceil(80/30) x 30

	aggregated := Aggregate(lines, itemInfo)
	require.Len(t, aggregated, 1)
	assert.Equal(t, int64(100), aggregated[0].OrderQty) // ceil(90/100) x 100

	aggregated = ApplyPrices(aggregated, BuildPriceMap(priceRows))
	assert.Equal(t, 500.0, aggregated[0].Amount)

	docs := BuildPoDocs(aggregated, 4500000001, "2025-11-24")
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "Vendor One", doc.Header.VendorName)
	assert.Equal(t, "V1", doc.Header.VendorCode)
	assert.Equal(t, "1021", doc.Header.Plant)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "component Y", doc.Items[0].ItemName)
	assert.Equal(t, int64(100), doc.Items[0].OrderQty)
	assert.Equal(t, 500.0, doc.Items[0].Amount)
}

// A shortage covered entirely by stock produces no documents.
func TestPipelineFullyCoveredShortageEndsEmpty(t *testing.T) {
	shortages := ExtractShortages([]map[string]interface{}{
		{"플랜트": "1021", "자재번호": "X", "D0_D1부족": -10.0},
	})
	children, itemInfo := BuildBomIndex([]map[string]interface{}{
		bomRow(".0", "X", "finished good X", 1, 1, "E", "", "", "", ""),
		bomRow(".1", "Y", "component Y", 1, 1, "F", "V1", "Vendor One", "", ""),
	})

	lines := ResolveRequirements(shortages, children)
	lines = NetInventory(lines, map[StockKey]float64{
		{Plant: "1021", MaterialCode: "Y"}: 500,
	})
	lines = ApplyLotSizing(lines, map[StockKey]StandardInfo{})

	aggregated := Aggregate(lines, itemInfo)

	assert.Empty(t, aggregated)
}
