package reports

import (
	"access-log-analytics/internal/aggregators"
	"access-log-analytics/internal/models"
)

// DefaultBreakdownAttributes are reported in addition to the three named tables
// when Options.BreakdownAttributes is nil.
func DefaultBreakdownAttributes() []models.Attribute {
	return []models.Attribute{
		models.AttributeStatus,
		models.AttributeMethod,
		models.AttributeTimezone,
	}
}

// Options configures one pipeline run.
type Options struct {
	FailedLoginThreshold int
	RequestsPerIPTopN    models.TopN
	EndpointsTopN        models.TopN
	SuspiciousTopN       models.TopN
	BreakdownsTopN       models.TopN
	// BreakdownAttributes selects the breakdown tables; nil means the defaults,
	// an empty slice means none.
	BreakdownAttributes []models.Attribute
}

// DefaultOptions keeps every row and flags IPs above the default threshold.
func DefaultOptions() Options {
	return Options{
		FailedLoginThreshold: aggregators.DefaultFailedLoginThreshold,
		RequestsPerIPTopN:    models.TopNAll,
		EndpointsTopN:        models.TopNAll,
		SuspiciousTopN:       models.TopNAll,
		BreakdownsTopN:       models.TopNAll,
		BreakdownAttributes:  DefaultBreakdownAttributes(),
	}
}
