package poService

import (
	"jnv-po/internal/utils"
)

// ExtractShortages scans the day's planning rows and keeps the finished goods
// whose projected net stock went negative. The deficit column is coerced with
// a 0 default, so an unparsable value never produces a shortage.
func ExtractShortages(rows []map[string]interface{}) []ShortageRecord {
	shortages := []ShortageRecord{}

	for _, row := range rows {
		deficit := utils.GetDefaultValue(row, "D0_D1부족", "float64").(float64)
		if deficit >= 0 {
			continue
		}

		shortages = append(shortages, ShortageRecord{
			Plant:        utils.GetCodeValue(row, "플랜트"),
			MaterialCode: utils.GetCodeValue(row, "자재번호"),
			ShortageQty:  -deficit,
		})
	}

	return shortages
}
