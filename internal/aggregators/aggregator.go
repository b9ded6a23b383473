package aggregators

import (
	"sort"

	"access-log-analytics/internal/models"
)

// KeyExtractor returns the grouping key of a record.
type KeyExtractor func(record *models.LogRecord) string

type Aggregator interface {
	// Aggregate groups the store by one of the named record attributes.
	// An invalid attribute yields an empty result.
	Aggregate(store *models.RecordStore, attribute models.Attribute) models.AggregationResult
	// AggregateBy groups the store by an arbitrary key.
	AggregateBy(store *models.RecordStore, keyExtractor KeyExtractor) models.AggregationResult
}

type aggregator struct{}

func NewAggregator() Aggregator {
	return &aggregator{}
}

func (a *aggregator) Aggregate(store *models.RecordStore, attribute models.Attribute) models.AggregationResult {
	if !attribute.IsValid() {
		return models.AggregationResult{}
	}
	return a.AggregateBy(store, attribute.Key)
}

func (a *aggregator) AggregateBy(store *models.RecordStore, keyExtractor KeyExtractor) models.AggregationResult {
	return countByKey(store.Records(), keyExtractor)
}

// countByKey counts records per key and orders the rows by count descending.
// Rows start in first-seen key order and the sort is stable on count only,
// so equal counts keep that order.
func countByKey(records []*models.LogRecord, keyExtractor KeyExtractor) models.AggregationResult {
	result := models.AggregationResult{}
	indexByKey := make(map[string]int)

	for _, record := range records {
		key := keyExtractor(record)
		idx, exists := indexByKey[key]
		if !exists {
			idx = len(result)
			indexByKey[key] = idx
			result = append(result, models.CountRow{Key: key})
		}
		result[idx].Count++
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})

	return result
}
