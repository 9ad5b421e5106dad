package reportService

// Open-PO grading, carried over from the SAP status codes: @5B@ is a closed
// order, @5D@ an open one. Open orders older than the warning threshold are
// flagged 경고, younger ones 확인필요.
const (
	statusClosed = "@5B@"
	statusOpen   = "@5D@"

	warningAgeDays = 14

	gradeNormal  = "정상"
	gradeWarning = "경고"
	gradeReview  = "확인필요"
	gradeOther   = "기타"
)

type OpenPoReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	BaseDate  string `json:"base_date"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

type OpenPoReportResponse struct {
	StartDate   string                   `json:"start_date"`
	EndDate     string                   `json:"end_date"`
	BaseDate    string                   `json:"base_date"`
	GradeCounts []GradeCount             `json:"grade_counts"`
	WarningRows []map[string]interface{} `json:"warning_rows"`
}
