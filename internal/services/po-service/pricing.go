package poService

import (
	"jnv-po/internal/utils"
)

// BuildPriceMap indexes the price source by material. The source can carry
// several rows per material; the last one read wins.
func BuildPriceMap(rows []map[string]interface{}) map[string]float64 {
	priceMap := map[string]float64{}

	for _, row := range rows {
		materialCode := utils.GetCodeValue(row, "자재번호")
		priceMap[materialCode] = utils.GetDefaultValue(row, "단가", "float64").(float64)
	}

	return priceMap
}

// ApplyPrices attaches the latest unit price to each aggregated line and
// computes the line amount. A material without a price gets a zero-amount
// line rather than an error.
func ApplyPrices(lines []AggregatedLine, priceMap map[string]float64) []AggregatedLine {
	for i := range lines {
		price := priceMap[lines[i].MaterialCode]

		lines[i].UnitPrice = price
		lines[i].Amount = float64(lines[i].OrderQty) * price
	}

	return lines
}
