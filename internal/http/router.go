package http

import (
	"net/http"

	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/shared/metrics"
	"access-log-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// RouterOptions holds the server-wide defaults of the report API.
type RouterOptions struct {
	DefaultReportOptions reports.Options
	// MaxBodyBytes caps an uploaded log; 0 means unlimited.
	MaxBodyBytes int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(reportPipeline reports.ReportPipeline, reportStore stores.ReportStore, opts RouterOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	createReportHandler := NewCreateReportHandler(reportPipeline, reportStore, opts.DefaultReportOptions, opts.MaxBodyBytes)
	listReportsHandler := NewListReportsHandler(reportStore)
	getReportHandler := NewGetReportHandler(reportStore)
	getReportCSVHandler := NewGetReportCSVHandler(reportStore)

	router.Route("/reports", func(r chi.Router) {
		r.Post("/", errorHandlingAdapter(createReportHandler))
		r.Get("/", errorHandlingAdapter(listReportsHandler))
		r.Get("/{reportId}", errorHandlingAdapter(getReportHandler))
		r.Get("/{reportId}/csv", errorHandlingAdapter(getReportCSVHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
