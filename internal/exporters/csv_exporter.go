package exporters

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/filestorages"
	"access-log-analytics/internal/shared/loggers"
)

type CSVExporter interface {
	// Export writes the CSV dump of report to fileKey, replacing any previous dump.
	Export(ctx context.Context, fileKey string, report *reports.Report) error
}

type csvExporter struct {
	fileStorage filestorages.FileStorage
}

func NewCSVExporter(fileStorage filestorages.FileStorage) CSVExporter {
	return &csvExporter{fileStorage: fileStorage}
}

func (e *csvExporter) Export(ctx context.Context, fileKey string, report *reports.Report) error {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, report); err != nil {
		return fmt.Errorf("failed to render csv: %w", err)
	}

	if _, err := e.fileStorage.Put(ctx, fileKey, &buf, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return fmt.Errorf("failed to put csv %q: %w", fileKey, err)
	}

	loggers.Ctx(ctx).Debug().Str("file_key", fileKey).Msg("csv report exported")
	return nil
}

// WriteCSV renders the three named tables of report as one CSV dump:
//
//	Requests per IP
//	IP Address,Request Count
//	203.0.113.5,8
//
//	Most Accessed Endpoint
//	URL,Access Count
//	/login,13
//
//	Suspicious Activity
//	IP Address,Failed Login Attempts
//	203.0.113.5,8
func WriteCSV(w io.Writer, report *reports.Report) error {
	writer := csv.NewWriter(w)

	for i, table := range report.Sections() {
		if i > 0 {
			// blank separator line between sections
			writer.Flush()
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := writeTable(writer, table); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeTable(writer *csv.Writer, table reports.Table) error {
	if err := writer.Write([]string{table.Name}); err != nil {
		return err
	}
	if err := writer.Write([]string{table.KeyHeader, table.CountHeader}); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writer.Write([]string{row.Key, strconv.FormatInt(row.Count, 10)}); err != nil {
			return err
		}
	}
	return nil
}
