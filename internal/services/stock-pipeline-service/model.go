package stockPipelineService

type StockRow struct {
	Plant        string
	MaterialCode string
	Qty          float64
}

type StockPipelineRequest struct {
	Date string `json:"date"`
}
