package poService

import (
	"strings"

	"jnv-po/internal/utils"
)

// BuildBomIndex reconstructs parent-component structure from the flat BOM
// table. The table has no grouping key: a row belongs to the finished good of
// the most recent ".0" marker row, so the scan must run in the table's
// retrieval order with a single forward-filled cursor.
//
// Marker rows themselves are excluded from the child set. Children with a
// special procurement flag other than empty/"0", or with the excluded
// valuation class, are filtered out. The second return value maps component
// codes to description/unit for enriching aggregated lines later; the first
// surviving row per component wins.
func BuildBomIndex(rows []map[string]interface{}) ([]BomComponentRow, map[string]ItemInfo) {
	children := []BomComponentRow{}
	itemInfo := map[string]ItemInfo{}

	currentTop := ""
	for _, row := range rows {
		marker := utils.GetCodeValue(row, "전개번호")
		materialCode := utils.GetCodeValue(row, "자재번호")

		if marker == topLevelMarker {
			currentTop = materialCode
			continue
		}

		special := normalizeSpecialProcurement(utils.GetCodeValue(row, "특별조달유형"))
		if special != "" && special != "0" {
			continue
		}

		valuation := normalizeValuationClass(utils.GetCodeValue(row, "평가클래스"))
		if valuation == excludedValuationClass {
			continue
		}

		child := BomComponentRow{
			LevelMarker:        marker,
			ParentMaterial:     currentTop,
			ComponentCode:      materialCode,
			Description:        strings.TrimSpace(utils.GetDefaultValue(row, "구성요소내역", "string").(string)),
			QtyPerParent:       utils.GetDefaultValue(row, "소요량_구성품", "float64").(float64),
			PackMultiplier:     utils.GetFloatOr(row, "단위량", 1),
			Unit:               strings.TrimSpace(utils.GetDefaultValue(row, "단위", "string").(string)),
			ProcurementType:    utils.GetCodeValue(row, "조달유형"),
			SpecialProcurement: special,
			ValuationClass:     valuation,
			VendorCode:         utils.GetCodeValue(row, "공급업체"),
			VendorName:         utils.GetDefaultValue(row, "공급업체명", "string").(string),
		}
		children = append(children, child)

		if _, exists := itemInfo[child.ComponentCode]; !exists {
			itemInfo[child.ComponentCode] = ItemInfo{
				Description: child.Description,
				Unit:        child.Unit,
			}
		}
	}

	return children, itemInfo
}

func normalizeSpecialProcurement(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "nan" || value == "none" {
		return ""
	}

	return value
}

func normalizeValuationClass(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "nan") {
		return ""
	}

	return value
}

// ResolveRequirements joins each shortage to the BOM children of its finished
// good and computes the gross component requirement. Only externally procured
// components (type F) survive; in-house produced components are not purchased.
func ResolveRequirements(shortages []ShortageRecord, children []BomComponentRow) []RequirementLine {
	lines := []RequirementLine{}

	childrenByParent := map[string][]BomComponentRow{}
	for _, child := range children {
		childrenByParent[child.ParentMaterial] = append(childrenByParent[child.ParentMaterial], child)
	}

	for _, shortage := range shortages {
		for _, child := range childrenByParent[shortage.MaterialCode] {
			if child.ProcurementType != externalProcurementType {
				continue
			}

			lines = append(lines, RequirementLine{
				Plant:           shortage.Plant,
				FinishedGood:    shortage.MaterialCode,
				MaterialCode:    child.ComponentCode,
				Description:     child.Description,
				Unit:            child.Unit,
				ProcurementType: child.ProcurementType,
				VendorCode:      child.VendorCode,
				VendorName:      child.VendorName,
				RequiredQty:     shortage.ShortageQty * child.QtyPerParent * child.PackMultiplier,
			})
		}
	}

	return lines
}
