package utils

import (
	"strconv"
	"strings"
)

// GetDefaultValue coerces a raw row value to the requested type, falling back
// to the zero value when the column is missing or unparsable. All join
// boundaries in the PO pipeline go through here so the silent-default policy
// lives in one place.
func GetDefaultValue(row map[string]interface{}, key string, defaultType string) interface{} {
	if val, ok := row[key]; ok && val != nil {
		switch defaultType {
		case "string":
			if v, ok := val.(string); ok && v != "" {
				return v
			}
			return ""
		case "float64":
			if strVal, ok := val.(string); ok {
				strVal = strings.TrimSpace(strVal)
				strVal = strings.ReplaceAll(strVal, ",", "")

				if floatVal, err := strconv.ParseFloat(strVal, 64); err == nil {
					return floatVal
				}
			}
			if v, ok := val.(float64); ok {
				return v
			}
			if v, ok := val.(int64); ok {
				return float64(v)
			}
			return 0.0
		case "int":
			if v, ok := val.(int); ok {
				return v
			}
			if v, ok := val.(int64); ok {
				return int(v)
			}
			if v, ok := val.(float64); ok {
				return int(v)
			}
			return 0
		default:
			return nil
		}
	}

	switch defaultType {
	case "string":
		return ""
	case "float64":
		return 0.0
	case "int":
		return 0
	default:
		return nil
	}
}

// GetFloatOr is GetDefaultValue for float columns whose business default is
// not zero (e.g. a unit multiplier that defaults to 1). An explicitly stored
// value, including 0, is kept; only a missing or unparsable one falls back.
func GetFloatOr(row map[string]interface{}, key string, fallback float64) float64 {
	val, ok := row[key]
	if !ok || val == nil {
		return fallback
	}

	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return fallback
}
