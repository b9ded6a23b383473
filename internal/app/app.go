package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"access-log-analytics/internal/aggregators"
	internalhttp "access-log-analytics/internal/http"
	"access-log-analytics/internal/ingestors"
	"access-log-analytics/internal/parsers"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/configs"
	"access-log-analytics/internal/shared/filestorages"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/stores"
)

const appName = "access-log-analytics"

// App holds the dependencies of the report API server and manages its lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStore := stores.NewReportStore(fileStorage)

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(newReportPipeline(), reportStore, internalhttp.RouterOptions{
		DefaultReportOptions: config.Analysis.ReportOptions(),
		MaxBodyBytes:         config.Server.MaxBodyBytes,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler exposes the configured router, mainly for in-process tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, file_storage_root_dir=%s, failed_login_threshold=%d)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Analysis.FailedLoginThreshold)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

func newReportPipeline() reports.ReportPipeline {
	return reports.NewReportPipeline(
		ingestors.NewLogFileIngestor(parsers.NewLineParser()),
		aggregators.NewAggregator(),
		aggregators.NewSuspiciousActivityDetector(),
	)
}
