package reports

import (
	"access-log-analytics/internal/models"
)

// Named tables produced by every pipeline run.
const (
	TableRequestsPerIP         = "Requests per IP"
	TableMostAccessedEndpoints = "Most Accessed Endpoint"
	TableSuspiciousActivity    = "Suspicious Activity"
)

// Table is a titled AggregationResult ready for presentation or export.
type Table struct {
	Name        string                   `json:"name"`
	KeyHeader   string                   `json:"keyHeader"`
	CountHeader string                   `json:"countHeader"`
	Rows        models.AggregationResult `json:"rows"`
}

// Report is the output of one pipeline run.
//
// Example JSON (trimmed):
//
//	{
//	  "recordCount": 3,
//	  "failedLoginThreshold": 10,
//	  "requestsPerIp": {
//	    "name": "Requests per IP",
//	    "keyHeader": "IP Address",
//	    "countHeader": "Request Count",
//	    "rows": [{"key": "10.0.0.1", "count": 2}, {"key": "10.0.0.2", "count": 1}]
//	  },
//	  "mostAccessedEndpoints": {...},
//	  "suspiciousActivity": {"name": "Suspicious Activity", ..., "rows": []},
//	  "breakdowns": [{"name": "Status Report", ...}, {"name": "Method Report", ...}, {"name": "Timezone Report", ...}]
//	}
type Report struct {
	RecordCount           int     `json:"recordCount"`
	FailedLoginThreshold  int     `json:"failedLoginThreshold"`
	RequestsPerIP         Table   `json:"requestsPerIp"`
	MostAccessedEndpoints Table   `json:"mostAccessedEndpoints"`
	SuspiciousActivity    Table   `json:"suspiciousActivity"`
	Breakdowns            []Table `json:"breakdowns"`
}

// IsEmpty reports whether the run had no records at all.
// Callers should then signal "no data to process" instead of presenting empty tables.
func (r *Report) IsEmpty() bool {
	return r == nil || r.RecordCount == 0
}

// HasSuspiciousActivity reports whether any IP crossed the failed-login threshold.
func (r *Report) HasSuspiciousActivity() bool {
	return r != nil && len(r.SuspiciousActivity.Rows) > 0
}

// Sections returns the three named tables in export order.
func (r *Report) Sections() []Table {
	return []Table{r.RequestsPerIP, r.MostAccessedEndpoints, r.SuspiciousActivity}
}

func newTable(name, keyHeader, countHeader string, rows models.AggregationResult) Table {
	return Table{
		Name:        name,
		KeyHeader:   keyHeader,
		CountHeader: countHeader,
		Rows:        rows,
	}
}

// breakdownTableName gives the dashboard title of a per-attribute breakdown, e.g. "Status Report".
func breakdownTableName(attribute models.Attribute) string {
	return attribute.KeyHeader() + " Report"
}
