package poService

import (
	"fmt"
	"log"

	"jnv-po/internal/db"
)

// GeneratePoDocs runs the full demand-netting pipeline for one order date and
// returns vendor-grouped purchase order documents. An empty result with a
// non-empty reason is a valid terminal state ("no purchase orders for this
// date"), not an error; only data-source and state-file failures return err.
func GeneratePoDocs(orderDate string) ([]PoDocument, string, error) {
	log.Printf("[po-service] generate start, date = %s", orderDate)

	poNo, err := GetPoNumber(orderDate, StateFilePath())
	if err != nil {
		return nil, "", err
	}
	log.Printf("[po-service] po number: %d", poNo)

	sqlxDb, err := db.ConnectSqlx("manufacturing")
	if err != nil {
		return nil, "", err
	}
	defer sqlxDb.Close()

	// Step 1: shortage extraction from the day's plan.
	planRows, err := db.ExecuteQuery(sqlxDb, fmt.Sprintf(`
		SELECT 플랜트, 자재번호, D0_D1부족
		FROM all_plan
		WHERE date = '%s'
	`, orderDate))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read all_plan: %w", err)
	}

	shortages := ExtractShortages(planRows)
	log.Printf("[step1] plan rows: %d, short finished goods: %d", len(planRows), len(shortages))
	if len(shortages) == 0 {
		return []PoDocument{}, "no finished goods short for this date", nil
	}

	// Step 2: BOM explosion. The scan is order dependent, so the rows come
	// back in primary key order and are never re-sorted.
	bomRows, err := db.ExecuteQuery(sqlxDb, `
		SELECT 전개번호, 자재번호, 구성요소내역, 소요량_구성품, 단위량, 단위,
		       조달유형, 공급업체, 공급업체명, 특별조달유형, 평가클래스
		FROM bom
	`)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read bom: %w", err)
	}

	children, itemInfo := BuildBomIndex(bomRows)
	log.Printf("[step2] bom rows: %d, filtered children: %d", len(bomRows), len(children))

	// Step 3: gross component requirements, externally procured only.
	lines := ResolveRequirements(shortages, children)
	log.Printf("[step3] externally procured requirement lines: %d", len(lines))
	if len(lines) == 0 {
		return []PoDocument{}, "no externally procured components to order", nil
	}

	// Step 4: inventory netting against the day's snapshot.
	stockTable, err := ResolveStockTable(sqlxDb, orderDate)
	if err != nil {
		return nil, "", err
	}

	stockRows, err := db.ExecuteQuery(sqlxDb, fmt.Sprintf(`
		SELECT 플랜트, 자재번호, 재고수량
		FROM %s
	`, stockTable))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", stockTable, err)
	}

	lines = NetInventory(lines, BuildStockMap(stockRows))

	// Step 5: lot sizing from the item master.
	stdRows, err := db.ExecuteQuery(sqlxDb, `
		SELECT 플랜트, 자재번호, 적입수량, 최소재고, 구매처
		FROM standard_info
	`)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read standard_info: %w", err)
	}

	lines = ApplyLotSizing(lines, BuildStandardInfoMap(stdRows))
	log.Printf("[step5] lines after lot sizing: %d", len(lines))

	// Step 6: vendor/material aggregation with the 100-unit bulk rounding.
	aggregated := Aggregate(lines, itemInfo)
	log.Printf("[step6] aggregated order lines: %d", len(aggregated))
	if len(aggregated) == 0 {
		return []PoDocument{}, "no positive order quantities after aggregation", nil
	}

	// Step 7: prices and amounts.
	priceRows, err := db.ExecuteQuery(sqlxDb, "SELECT 자재번호, 단가 FROM `purchase order`")
	if err != nil {
		return nil, "", fmt.Errorf("failed to read price source: %w", err)
	}

	aggregated = ApplyPrices(aggregated, BuildPriceMap(priceRows))

	// Step 8: vendor documents.
	docs := BuildPoDocs(aggregated, poNo, orderDate)
	log.Printf("[result] po documents: %d", len(docs))

	return docs, "", nil
}
