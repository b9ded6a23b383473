package http

import (
	"errors"
	"net/http"

	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/shared/ulid"
	"access-log-analytics/internal/stores"
)

// CreateReportResponse is the body of a successful POST /reports.
type CreateReportResponse struct {
	ReportID string          `json:"reportId"`
	Report   *reports.Report `json:"report"`
}

type createReportHandler struct {
	reportPipeline reports.ReportPipeline
	reportStore    stores.ReportStore
	queryParser    *reportQueryParser
	maxBodyBytes   int64
}

func NewCreateReportHandler(reportPipeline reports.ReportPipeline, reportStore stores.ReportStore, defaults reports.Options, maxBodyBytes int64) AppHttpHandler {
	return &createReportHandler{
		reportPipeline: reportPipeline,
		reportStore:    reportStore,
		queryParser:    newReportQueryParser(defaults),
		maxBodyBytes:   maxBodyBytes,
	}
}

// Handle processes POST /reports: the body is a raw access log, the query tunes the report.
func (h *createReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	opts, err := h.queryParser.Parse(r.URL.Query())
	if err != nil {
		return err
	}

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	report, err := h.reportPipeline.RunReader(r.Context(), body, opts)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errRequestTooLarge(maxBytesErr.Limit, err)
		}
		return err
	}
	if report.IsEmpty() {
		return errNoDataToProcess()
	}

	reportID := ulid.NewULID()
	if err := h.reportStore.Put(r.Context(), reportID, report); err != nil {
		if errors.Is(err, stores.ErrReportAlreadyExist) {
			return errReportIDConflict(reportID, err)
		}
		return errInternalReportStoreFailed(err)
	}

	loggers.Ctx(r.Context()).Info().
		Str(loggers.FieldReportID, reportID).
		Int(loggers.FieldRecordCount, report.RecordCount).
		Bool("suspicious_activity", report.HasSuspiciousActivity()).
		Msg("report created")

	writeJSON(w, http.StatusCreated, CreateReportResponse{ReportID: reportID, Report: report})
	return nil
}
