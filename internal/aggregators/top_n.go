package aggregators

import (
	"access-log-analytics/internal/models"
)

// TopN returns the first n rows of an already ordered result.
// n larger than the result returns every row; n <= 0 returns none.
// The returned slice never aliases result.
func TopN(result models.AggregationResult, n models.TopN) models.AggregationResult {
	if n <= 0 {
		return models.AggregationResult{}
	}
	size := len(result)
	if int(n) < size {
		size = int(n)
	}
	top := make(models.AggregationResult, size)
	copy(top, result[:size])
	return top
}
