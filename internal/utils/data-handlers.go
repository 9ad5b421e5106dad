package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// CodeString renders a material/plant code column to its canonical text form.
// Numeric-looking codes come out of the driver as float64 (plant 1021 ->
// 1021.0) and must not pick up a trailing ".0"; alphanumeric codes like
// "71118-P6000" pass through trimmed.
func CodeString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// GetCodeValue is CodeString applied to a row column.
func GetCodeValue(row map[string]interface{}, key string) string {
	return CodeString(row[key])
}
