package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/filestorages"
)

var (
	ErrReportAlreadyExist = errors.New("report already exists")
	ErrReportNotFound     = errors.New("report not found")
)

// ReportStore keeps the flat JSON dump of finished reports, one file per report ID.
// Reports are write-once: Put never overwrites an existing report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	Put(ctx context.Context, reportID string, report *reports.Report) error
	Get(ctx context.Context, reportID string) (*reports.Report, error)
	List(ctx context.Context) ([]string, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Put(ctx context.Context, reportID string, report *reports.Report) error {
	jsonData, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.getKey(reportID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrReportAlreadyExist
		}
		return fmt.Errorf("failed to put report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, reportID string) (*reports.Report, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(reportID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var report reports.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// List returns the IDs of all stored reports, oldest first (report IDs are ULIDs).
func (s *reportStore) List(ctx context.Context) ([]string, error) {
	keys, err := s.fileStorage.List(ctx, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reportIDs := make([]string, 0, len(keys))
	for _, key := range keys {
		name := path.Base(key)
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		reportIDs = append(reportIDs, strings.TrimSuffix(name, ".json"))
	}
	return reportIDs, nil
}

func (s *reportStore) getKey(reportID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, reportID)
}
