package reports

import (
	"context"
	"io"
	"time"

	"access-log-analytics/internal/aggregators"
	"access-log-analytics/internal/ingestors"
	"access-log-analytics/internal/models"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/shared/metrics"
	"access-log-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=report_pipeline.go -destination=./mocks/report_pipeline_mock.go -package=mocks
type ReportPipeline interface {
	// Run parses the log file at filePath and builds a Report.
	// A missing or unreadable file is returned as an error together with an
	// empty, fully formed Report: the run degrades instead of aborting.
	Run(ctx context.Context, filePath string, opts Options) (*Report, error)
	// RunReader is Run for an already opened log stream.
	RunReader(ctx context.Context, r io.Reader, opts Options) (*Report, error)
	// Build produces a Report from records that were already parsed.
	Build(ctx context.Context, store *models.RecordStore, opts Options) *Report
	// Breakdown groups the store by any attribute and keeps the top n rows.
	Breakdown(store *models.RecordStore, attribute models.Attribute, n models.TopN) Table
}

type reportPipeline struct {
	ingestor                   ingestors.LogFileIngestor
	aggregator                 aggregators.Aggregator
	suspiciousActivityDetector aggregators.SuspiciousActivityDetector
}

func NewReportPipeline(ingestor ingestors.LogFileIngestor, aggregator aggregators.Aggregator, suspiciousActivityDetector aggregators.SuspiciousActivityDetector) ReportPipeline {
	return &reportPipeline{
		ingestor:                   ingestor,
		aggregator:                 aggregator,
		suspiciousActivityDetector: suspiciousActivityDetector,
	}
}

func (p *reportPipeline) Run(ctx context.Context, filePath string, opts Options) (*Report, error) {
	start := time.Now()
	store, err := p.ingestor.Build(ctx, filePath)
	return p.finish(ctx, start, store, err, opts)
}

func (p *reportPipeline) RunReader(ctx context.Context, r io.Reader, opts Options) (*Report, error) {
	start := time.Now()
	store, err := p.ingestor.Read(ctx, r)
	return p.finish(ctx, start, store, err, opts)
}

func (p *reportPipeline) finish(ctx context.Context, start time.Time, store *models.RecordStore, err error, opts Options) (*Report, error) {
	logger := loggers.Ctx(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("log input unavailable, continuing with an empty record store")
		store = models.NewRecordStore()
	}

	report := p.Build(ctx, store, opts)

	errorCode := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		errorCode = svcErr.Code
	}
	metricReportGeneratedTotal.WithLabelValues(errorCode).Inc()
	metricReportDuration.WithLabelValues(errorCode).Observe(time.Since(start).Seconds())

	return report, err
}

func (p *reportPipeline) Build(ctx context.Context, store *models.RecordStore, opts Options) *Report {
	logger := loggers.Ctx(ctx)

	requestsPerIP := p.aggregator.Aggregate(store, models.AttributeIPAddress)
	endpoints := p.aggregator.Aggregate(store, models.AttributeURL)
	suspicious := p.suspiciousActivityDetector.Detect(store, opts.FailedLoginThreshold)

	report := &Report{
		RecordCount:           store.Len(),
		FailedLoginThreshold:  opts.FailedLoginThreshold,
		RequestsPerIP:         newTable(TableRequestsPerIP, "IP Address", "Request Count", aggregators.TopN(requestsPerIP, opts.RequestsPerIPTopN)),
		MostAccessedEndpoints: newTable(TableMostAccessedEndpoints, "URL", "Access Count", aggregators.TopN(endpoints, opts.EndpointsTopN)),
		SuspiciousActivity:    newTable(TableSuspiciousActivity, "IP Address", "Failed Login Attempts", aggregators.TopN(suspicious, opts.SuspiciousTopN)),
	}
	breakdownAttributes := opts.BreakdownAttributes
	if breakdownAttributes == nil {
		breakdownAttributes = DefaultBreakdownAttributes()
	}
	report.Breakdowns = make([]Table, 0, len(breakdownAttributes))
	for _, attribute := range breakdownAttributes {
		report.Breakdowns = append(report.Breakdowns, p.Breakdown(store, attribute, opts.BreakdownsTopN))
	}

	metricReportRecords.Observe(float64(report.RecordCount))
	logger.Debug().
		Int(loggers.FieldRecordCount, report.RecordCount).
		Int("suspicious_ip_count", len(suspicious)).
		Msg("report built")

	return report
}

func (p *reportPipeline) Breakdown(store *models.RecordStore, attribute models.Attribute, n models.TopN) Table {
	result := p.aggregator.Aggregate(store, attribute)
	return newTable(breakdownTableName(attribute), attribute.KeyHeader(), "Count", aggregators.TopN(result, n))
}
