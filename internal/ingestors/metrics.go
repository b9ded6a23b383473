package ingestors

import (
	"access-log-analytics/internal/shared/metrics"
)

var (
	// metricLinesTotal counts input lines by outcome: accepted (parsed into a record)
	// or rejected (fewer than nine tokens).
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_total",
		},
		[]string{metrics.FieldResult},
	)

	metricFileReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "file_read_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
