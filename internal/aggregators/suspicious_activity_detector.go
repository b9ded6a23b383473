package aggregators

import (
	"access-log-analytics/internal/models"
)

const (
	// DefaultFailedLoginThreshold is used when the caller does not configure one.
	DefaultFailedLoginThreshold = 10

	failedLoginStatus  = "401"
	failedLoginMessage = "Invalid credentials"
)

type SuspiciousActivityDetector interface {
	// Detect returns the IPs whose failed-login count is strictly greater than threshold,
	// ordered like any other aggregation. An empty result means nothing suspicious.
	Detect(store *models.RecordStore, threshold int) models.AggregationResult
}

type suspiciousActivityDetector struct{}

func NewSuspiciousActivityDetector() SuspiciousActivityDetector {
	return &suspiciousActivityDetector{}
}

func (d *suspiciousActivityDetector) Detect(store *models.RecordStore, threshold int) models.AggregationResult {
	failed := make([]*models.LogRecord, 0)
	for _, record := range store.Records() {
		if IsFailedLogin(record) {
			failed = append(failed, record)
		}
	}

	counts := countByKey(failed, models.AttributeIPAddress.Key)

	flagged := models.AggregationResult{}
	for _, row := range counts {
		if row.Count > int64(threshold) {
			flagged = append(flagged, row)
		}
	}
	return flagged
}

// IsFailedLogin matches a 401 status or an "Invalid credentials" message.
// Either condition is enough; the two are not required to agree.
func IsFailedLogin(record *models.LogRecord) bool {
	return record.Status == failedLoginStatus || record.HasMessage(failedLoginMessage)
}
