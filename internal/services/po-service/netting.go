package poService

import (
	"fmt"
	"log"

	"jnv-po/internal/db"
	"jnv-po/internal/utils"

	"github.com/jmoiron/sqlx"
)

// ResolveStockTable picks the snapshot source for the target date: the
// date-named table (stock_check_<mm>_<dd>) when it exists, otherwise the
// generic current snapshot.
func ResolveStockTable(sqlxDb *sqlx.DB, date string) (string, error) {
	tableName := fmt.Sprintf("stock_check_%s", utils.MonthDaySuffix(date))

	query := fmt.Sprintf(`
		SELECT COUNT(*) cnt
		FROM information_schema.tables
		WHERE table_schema = database()
		  AND table_name = '%s'
	`, tableName)

	rows, err := db.ExecuteQuery(sqlxDb, query)
	if err != nil {
		return "", fmt.Errorf("failed to resolve stock table: %w", err)
	}

	exists := len(rows) > 0 && utils.GetDefaultValue(rows[0], "cnt", "float64").(float64) > 0
	if !exists {
		tableName = "stock_check"
	}

	log.Printf("[po-service] stock snapshot table: %s", tableName)

	return tableName, nil
}

// BuildStockMap indexes snapshot rows by plant/material. On-hand quantity is
// coerced with a 0 default.
func BuildStockMap(rows []map[string]interface{}) map[StockKey]float64 {
	stockMap := map[StockKey]float64{}

	for _, row := range rows {
		key := StockKey{
			Plant:        utils.GetCodeValue(row, "플랜트"),
			MaterialCode: utils.GetCodeValue(row, "자재번호"),
		}

		stockMap[key] += utils.GetDefaultValue(row, "재고수량", "float64").(float64)
	}

	return stockMap
}

// NetInventory subtracts on-hand stock from the gross requirement. A missing
// snapshot row counts as zero on hand, and the net shortage never goes
// negative.
func NetInventory(lines []RequirementLine, stockMap map[StockKey]float64) []RequirementLine {
	for i := range lines {
		onHand := stockMap[StockKey{Plant: lines[i].Plant, MaterialCode: lines[i].MaterialCode}]

		lines[i].OnHandQty = onHand

		net := lines[i].RequiredQty - onHand
		if net < 0 {
			net = 0
		}
		lines[i].NetShortageQty = net
	}

	return lines
}
