package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func ReadExcelFile(c *gin.Context, formFieldName, sheetName string) ([]map[string]interface{}, string, error) {
	file, err := c.FormFile(formFieldName)
	if err != nil {
		return nil, "", fmt.Errorf("file upload error: %w", err)
	}
	fileName := file.Filename

	f, err := file.Open()
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to read Excel file: %w", err)
	}

	if sheetName == "" {
		sheets := xlsx.GetSheetList()
		if len(sheets) == 0 {
			return nil, fileName, errors.New("no sheet found in the Excel file")
		}
		sheetName = sheets[0]
	}

	rows, err := xlsx.GetRows(sheetName)
	if err != nil {
		return nil, fileName, fmt.Errorf("unable to read rows from sheet: %w", err)
	}

	if len(rows) < 2 {
		return nil, fileName, errors.New("no data found in the Excel file")
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var results []map[string]interface{}

	for _, row := range rows[1:] {
		record := make(map[string]interface{})
		for j := range headers {
			columnName := headers[j]

			if j >= len(row) || strings.TrimSpace(row[j]) == "" {
				record[columnName] = nil
				continue
			}

			cell := strings.TrimSpace(row[j])
			if f, err := strconv.ParseFloat(cell, 64); err == nil {
				record[columnName] = f
			} else {
				record[columnName] = cell
			}
		}
		results = append(results, record)
	}

	return results, fileName, nil
}
