package reportService

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jnv-po/internal/db"
	"jnv-po/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetOpenPoReport classifies open purchase orders by elapsed age against the
// base date and returns grade counts plus the rows that crossed the warning
// threshold.
func GetOpenPoReport(c *gin.Context, jsonPayload string) (interface{}, error) {
	var req OpenPoReportRequest

	if jsonPayload != "" {
		if err := json.Unmarshal([]byte(jsonPayload), &req); err != nil {
			return nil, errors.New("failed to unmarshal JSON into struct: " + err.Error())
		}
	}

	if req.BaseDate == "" {
		req.BaseDate = time.Now().Format("2006-01-02")
	}
	if req.EndDate == "" {
		req.EndDate = req.BaseDate
	}
	if req.StartDate == "" {
		baseDate, err := utils.ParseDateOnly(req.BaseDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = baseDate.AddDate(0, 0, -30).Format("2006-01-02")
	}

	for _, dateStr := range []string{req.StartDate, req.EndDate, req.BaseDate} {
		if _, err := utils.ParseDateOnly(dateStr); err != nil {
			return nil, err
		}
	}

	sqlxDb, err := db.ConnectSqlx(`manufacturing`)
	if err != nil {
		return nil, err
	}
	defer sqlxDb.Close()

	baseCte := fmt.Sprintf(`
		WITH base AS (
			SELECT
				상태,
				DATE(생성일) 생성일자,
				플랜트,
				구매오더,
				구매오더품목,
				공급업체,
				공급업체명,
				자재번호,
				내역,
				납품요청일,
				오더수량,
				DATEDIFF('%s', DATE(생성일)) 경과일수,
				CASE
					WHEN 상태 = '%s' THEN '%s'
					WHEN 상태 = '%s' AND DATEDIFF('%s', DATE(생성일)) >= %d THEN '%s'
					WHEN 상태 = '%s' THEN '%s'
					ELSE '%s'
				END 알림등급
			FROM migyul
			WHERE 생성일 >= '%s'
			  AND 생성일 < DATE_ADD('%s', INTERVAL 1 DAY)
		)
	`, req.BaseDate,
		statusClosed, gradeNormal,
		statusOpen, req.BaseDate, warningAgeDays, gradeWarning,
		statusOpen, gradeReview,
		gradeOther,
		req.StartDate, req.EndDate)

	countRows, err := db.ExecuteQuery(sqlxDb, baseCte+`
		SELECT 알림등급, COUNT(*) cnt
		FROM base
		GROUP BY 알림등급
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read open po counts: %w", err)
	}

	gradeCounts := []GradeCount{}
	for _, row := range countRows {
		gradeCounts = append(gradeCounts, GradeCount{
			Grade: utils.GetDefaultValue(row, "알림등급", "string").(string),
			Count: int(utils.GetDefaultValue(row, "cnt", "float64").(float64)),
		})
	}

	warningRows, err := db.ExecuteQuery(sqlxDb, baseCte+fmt.Sprintf(`
		SELECT *
		FROM base
		WHERE 알림등급 = '%s'
		ORDER BY 경과일수 DESC
	`, gradeWarning))
	if err != nil {
		return nil, fmt.Errorf("failed to read open po warning rows: %w", err)
	}

	return OpenPoReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		BaseDate:    req.BaseDate,
		GradeCounts: gradeCounts,
		WarningRows: warningRows,
	}, nil
}
