package exporters

import (
	"fmt"
	"io"

	"access-log-analytics/internal/reports"
)

// WriteText prints report as console tables:
//
//	IP Address           Request Count
//	192.168.1.1          7
//
//	Most Accessed Endpoint:
//	/login (Accessed 13 times)
//
//	Suspicious Activity Detected:
//	IP Address           Failed Login Attempts
//	203.0.113.5          8
//
// followed by the status, method and timezone breakdowns.
func WriteText(w io.Writer, report *reports.Report) error {
	p := &textPrinter{w: w}

	p.table(report.RequestsPerIP)

	p.printf("\nMost Accessed Endpoint:\n")
	if rows := report.MostAccessedEndpoints.Rows; len(rows) > 0 {
		p.printf("%s (Accessed %d times)\n", rows[0].Key, rows[0].Count)
	}

	if report.HasSuspiciousActivity() {
		p.printf("\nSuspicious Activity Detected:\n")
		p.table(report.SuspiciousActivity)
	} else {
		p.printf("\nNo Suspicious Activity Detected (threshold: %d failed login attempts)\n", report.FailedLoginThreshold)
	}

	for _, breakdown := range report.Breakdowns {
		p.printf("\n%s:\n", breakdown.Name)
		p.table(breakdown)
	}

	return p.err
}

// textPrinter remembers the first write error so callers check once.
type textPrinter struct {
	w   io.Writer
	err error
}

func (p *textPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *textPrinter) table(table reports.Table) {
	p.printf("%-20s %s\n", table.KeyHeader, table.CountHeader)
	for _, row := range table.Rows {
		p.printf("%-20s %d\n", row.Key, row.Count)
	}
}
