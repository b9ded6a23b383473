package http

import (
	"context"
	"errors"
	"net/http"

	"access-log-analytics/internal/exporters"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/shared/ulid"
	"access-log-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

const paramReportID = "reportId"

// ListReportsResponse is the body of GET /reports.
type ListReportsResponse struct {
	ReportIDs []string `json:"reportIds"`
}

type getReportHandler struct {
	reportStore stores.ReportStore
}

func NewGetReportHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &getReportHandler{reportStore: reportStore}
}

// Handle processes GET /reports/{reportId}.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := loadReport(r.Context(), h.reportStore, chi.URLParam(r, paramReportID))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}

type getReportCSVHandler struct {
	reportStore stores.ReportStore
}

func NewGetReportCSVHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &getReportCSVHandler{reportStore: reportStore}
}

// Handle processes GET /reports/{reportId}/csv, the flat dump of the three named tables.
func (h *getReportCSVHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID := chi.URLParam(r, paramReportID)
	report, err := loadReport(r.Context(), h.reportStore, reportID)
	if err != nil {
		return err
	}

	w.Header().Set(headerContentType, contentTypeCSV)
	setAttachment(w, reportID+".csv")
	w.WriteHeader(http.StatusOK)
	if err := exporters.WriteCSV(w, report); err != nil {
		// status already sent
		loggers.Ctx(r.Context()).Warn().Err(err).Str(loggers.FieldReportID, reportID).Msg("failed to stream csv report")
	}
	return nil
}

type listReportsHandler struct {
	reportStore stores.ReportStore
}

func NewListReportsHandler(reportStore stores.ReportStore) AppHttpHandler {
	return &listReportsHandler{reportStore: reportStore}
}

// Handle processes GET /reports.
func (h *listReportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportIDs, err := h.reportStore.List(r.Context())
	if err != nil {
		return errInternalReportStoreFailed(err)
	}

	writeJSON(w, http.StatusOK, ListReportsResponse{ReportIDs: reportIDs})
	return nil
}

// loadReport maps a malformed ID to not-found: such a report can never exist.
func loadReport(ctx context.Context, reportStore stores.ReportStore, reportID string) (*reports.Report, error) {
	if !ulid.IsValid(reportID) {
		return nil, errReportNotFound(reportID, nil)
	}

	report, err := reportStore.Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(reportID, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}
	return report, nil
}
