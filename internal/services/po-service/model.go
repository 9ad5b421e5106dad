package poService

// Business constants carried over from the SAP-side extracts.
const (
	// topLevelMarker is the 전개번호 value that marks a finished good row in
	// the flat BOM table. Every row after it belongs to that finished good
	// until the next marker.
	topLevelMarker = ".0"

	// excludedValuationClass rows are phantom/non-stock items and never
	// purchased.
	excludedValuationClass = "3000"

	// externalProcurementType marks components that are bought, not produced.
	externalProcurementType = "F"

	// noVendorSentinel stands in for a missing vendor assignment.
	noVendorSentinel = "NO_VENDOR"

	// maxVendorsPerRun caps how many vendor documents a single run emits.
	maxVendorsPerRun = 10

	// bulkRoundUnit is the coarse lot size applied to each aggregated line
	// after vendor/material consolidation.
	bulkRoundUnit = 100
)

type ShortageRecord struct {
	Plant        string
	MaterialCode string
	ShortageQty  float64
}

type BomComponentRow struct {
	LevelMarker        string
	ParentMaterial     string
	ComponentCode      string
	Description        string
	QtyPerParent       float64
	PackMultiplier     float64
	Unit               string
	ProcurementType    string
	SpecialProcurement string
	ValuationClass     string
	VendorCode         string
	VendorName         string
}

type ItemInfo struct {
	Description string
	Unit        string
}

// StockKey addresses a plant/material pair in the snapshot and master maps.
type StockKey struct {
	Plant        string
	MaterialCode string
}

type StandardInfo struct {
	// PackSize is the rounding increment, already defaulted to 1 when the
	// stored value is 0. RawPackSize keeps the stored value for the
	// master-data gate: a row whose raw pack size is exactly 0 is dropped.
	PackSize    float64
	RawPackSize float64
	MinStock    float64
	PurchVendor string
}

type RequirementLine struct {
	Plant           string
	FinishedGood    string
	MaterialCode    string
	Description     string
	Unit            string
	ProcurementType string
	VendorCode      string
	VendorName      string
	RequiredQty     float64
	OnHandQty       float64
	NetShortageQty  float64
	PackSize        float64
	RawPackSize     float64
	MinStock        float64
	PurchVendor     string
	HasStandardInfo bool
	OrderQty        int64
}

type AggregatedLine struct {
	Plant        string
	MaterialCode string
	VendorCode   string
	VendorName   string
	Description  string
	Unit         string
	OrderQty     int64
	UnitPrice    float64
	Amount       float64
}

type PoHeader struct {
	PoNo       int64  `json:"po_no"`
	PoDate     string `json:"po_date"`
	Plant      string `json:"plant"`
	VendorCode string `json:"vendor_code"`
	VendorName string `json:"vendor_name"`
	BuyerName  string `json:"buyer_name"`
}

type PoItem struct {
	ItemName     string  `json:"item_name"`
	MaterialCode string  `json:"material_code"`
	OrderQty     int64   `json:"order_qty"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	Amount       float64 `json:"amount"`
}

type PoDocument struct {
	Header PoHeader `json:"header"`
	Items  []PoItem `json:"items"`
}

// SequenceState is the persisted PO numbering counter. It lives in a small
// JSON file and is rewritten only when the date advances.
type SequenceState struct {
	LastDate string `json:"last_date"`
	LastPoNo int64  `json:"last_po_no"`
}

type GeneratePoRequest struct {
	Date string `json:"date"`
}

type PdfInfo struct {
	VendorName string `json:"vendor_name"`
	FileName   string `json:"file_name"`
	Path       string `json:"path"`
}

type GeneratePoResponse struct {
	Ok       bool      `json:"ok"`
	Date     string    `json:"date"`
	Count    int       `json:"count"`
	PdfInfos []PdfInfo `json:"pdf_infos"`
	Message  string    `json:"message"`
}
