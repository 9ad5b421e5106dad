package poService

import (
	"math"

	"jnv-po/internal/utils"
)

// BuildStandardInfoMap indexes item-master rows by plant/material. The stored
// pack size is kept twice: raw for the data-quality gate, and defaulted to 1
// for rounding.
func BuildStandardInfoMap(rows []map[string]interface{}) map[StockKey]StandardInfo {
	stdMap := map[StockKey]StandardInfo{}

	for _, row := range rows {
		key := StockKey{
			Plant:        utils.GetCodeValue(row, "플랜트"),
			MaterialCode: utils.GetCodeValue(row, "자재번호"),
		}

		rawPackSize := utils.GetDefaultValue(row, "적입수량", "float64").(float64)
		packSize := rawPackSize
		if packSize == 0 {
			packSize = 1
		}

		purchVendor := utils.GetDefaultValue(row, "구매처", "string").(string)
		if purchVendor == "" {
			purchVendor = noVendorSentinel
		}

		stdMap[key] = StandardInfo{
			PackSize:    packSize,
			RawPackSize: rawPackSize,
			MinStock:    utils.GetDefaultValue(row, "최소재고", "float64").(float64),
			PurchVendor: purchVendor,
		}
	}

	return stdMap
}

// ApplyLotSizing joins the item master onto the netted lines and rounds each
// net shortage up to a whole number of packs.
//
// A line whose master row stores a raw pack size of exactly 0 is dropped:
// that is undefined master data, as opposed to a merely missing row, which
// rounds with pack size 1.
func ApplyLotSizing(lines []RequirementLine, stdMap map[StockKey]StandardInfo) []RequirementLine {
	sized := []RequirementLine{}

	for _, line := range lines {
		std, exists := stdMap[StockKey{Plant: line.Plant, MaterialCode: line.MaterialCode}]

		line.HasStandardInfo = exists
		if exists {
			if std.RawPackSize == 0 {
				continue
			}
			line.PackSize = std.PackSize
			line.RawPackSize = std.RawPackSize
			line.MinStock = std.MinStock
			line.PurchVendor = std.PurchVendor
		} else {
			line.PackSize = 1
			line.PurchVendor = noVendorSentinel
		}

		line.OrderQty = int64(math.Ceil(line.NetShortageQty/line.PackSize) * line.PackSize)

		sized = append(sized, line)
	}

	return sized
}

// Aggregate sums positive order quantities by plant, material and vendor,
// keeping the first-appearance order of the keys, then applies the coarse
// second rounding: each consolidated quantity is rounded up again to a
// multiple of 100. Description and unit come from the BOM item lookup.
func Aggregate(lines []RequirementLine, itemInfo map[string]ItemInfo) []AggregatedLine {
	type aggKey struct {
		Plant        string
		MaterialCode string
		VendorCode   string
		VendorName   string
	}

	order := []aggKey{}
	totals := map[aggKey]int64{}

	for _, line := range lines {
		if line.OrderQty <= 0 {
			continue
		}

		key := aggKey{
			Plant:        line.Plant,
			MaterialCode: line.MaterialCode,
			VendorCode:   line.VendorCode,
			VendorName:   line.VendorName,
		}

		if _, exists := totals[key]; !exists {
			order = append(order, key)
		}
		totals[key] += line.OrderQty
	}

	aggregated := []AggregatedLine{}
	for _, key := range order {
		qty := totals[key]
		qty = int64(math.Ceil(float64(qty)/bulkRoundUnit)) * bulkRoundUnit

		info := itemInfo[key.MaterialCode]

		aggregated = append(aggregated, AggregatedLine{
			Plant:        key.Plant,
			MaterialCode: key.MaterialCode,
			VendorCode:   key.VendorCode,
			VendorName:   key.VendorName,
			Description:  info.Description,
			Unit:         info.Unit,
			OrderQty:     qty,
		})
	}

	return aggregated
}
