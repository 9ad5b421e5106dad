package poService

import (
	"log"
)

// BuildPoDocs groups priced lines into one document per vendor. Vendors are
// taken in first-appearance order from the aggregated table and capped at
// maxVendorsPerRun; orders beyond the cap are not generated this run. All
// documents of a run share the same PO number.
func BuildPoDocs(lines []AggregatedLine, poNo int64, poDate string) []PoDocument {
	vendorOrder := []string{}
	linesByVendor := map[string][]AggregatedLine{}

	for _, line := range lines {
		vendorName := line.VendorName
		if vendorName == "" {
			vendorName = noVendorSentinel
		}

		if _, exists := linesByVendor[vendorName]; !exists {
			vendorOrder = append(vendorOrder, vendorName)
		}
		linesByVendor[vendorName] = append(linesByVendor[vendorName], line)
	}

	if len(vendorOrder) > maxVendorsPerRun {
		log.Printf("[po-service] %d vendors, capping documents at %d", len(vendorOrder), maxVendorsPerRun)
		vendorOrder = vendorOrder[:maxVendorsPerRun]
	}

	docs := []PoDocument{}
	for _, vendorName := range vendorOrder {
		vendorLines := linesByVendor[vendorName]

		items := []PoItem{}
		for _, line := range vendorLines {
			items = append(items, PoItem{
				ItemName:     line.Description,
				MaterialCode: line.MaterialCode,
				OrderQty:     line.OrderQty,
				Unit:         defaultUnit(line.Unit),
				UnitPrice:    line.UnitPrice,
				Amount:       line.Amount,
			})
		}

		docs = append(docs, PoDocument{
			Header: PoHeader{
				PoNo:       poNo,
				PoDate:     poDate,
				Plant:      vendorLines[0].Plant,
				VendorCode: vendorLines[0].VendorCode,
				VendorName: vendorName,
				BuyerName:  "(자동생성)",
			},
			Items: items,
		})
	}

	return docs
}

func defaultUnit(unit string) string {
	if unit == "" {
		return "EA"
	}

	return unit
}
