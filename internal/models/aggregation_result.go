package models

// CountRow is one (key, count) pair of a grouped count.
type CountRow struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// AggregationResult is a grouped count ordered by Count descending.
// Rows with equal counts keep the order in which their keys were first seen.
type AggregationResult []CountRow
