package utils

import (
	"fmt"
	"strings"
	"time"
)

func ParseDateOnly(dateStr string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}

	return t, nil
}

// MonthDaySuffix turns "2025-11-24" into "11_24", the suffix used for
// date-named stock snapshot tables.
func MonthDaySuffix(dateStr string) string {
	if len(dateStr) < 10 {
		return ""
	}

	return strings.ReplaceAll(dateStr[5:10], "-", "_")
}
