package reports

import (
	"access-log-analytics/internal/shared/metrics"
)

var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricReportRecords tracks how many records each report was built from.
	metricReportRecords = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "records",
			Buckets:   metrics.ExponentialBuckets(10, 10, 7),
		},
	)
)
