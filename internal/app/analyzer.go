package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"access-log-analytics/internal/exporters"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/configs"
	"access-log-analytics/internal/shared/filestorages"
	"access-log-analytics/internal/shared/loggers"
)

const noDataMessage = "No data to process."

// Analyzer runs the report pipeline over local log files and prints the results.
type Analyzer struct {
	config         *configs.Config
	logger         loggers.Logger
	reportPipeline reports.ReportPipeline
	csvExporter    exporters.CSVExporter
	outputDir      string
	csvFileName    string
}

// NewAnalyzer wires an Analyzer that logs to logOutput and writes CSV dumps next to
// config.Output.FileName.
func NewAnalyzer(config *configs.Config, logOutput io.Writer) (*Analyzer, error) {
	logger, err := loggers.NewWithWriter(config.Log.Level, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldComponent, "analyzer").
		Logger()

	outputDir, csvFileName := filepath.Split(config.Output.FileName)
	if outputDir == "" {
		outputDir = "."
	}
	fileStorage, err := filestorages.NewFileStorage(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize output storage: %w", err)
	}

	return &Analyzer{
		config:         config,
		logger:         logger,
		reportPipeline: newReportPipeline(),
		csvExporter:    exporters.NewCSVExporter(fileStorage),
		outputDir:      outputDir,
		csvFileName:    csvFileName,
	}, nil
}

type analysisResult struct {
	report *reports.Report
	err    error
}

// Analyze builds one report per input file concurrently and prints them to out in
// argument order. With no paths the configured analysis.input_path is used.
// It returns the first error met; the remaining files are still reported.
func (a *Analyzer) Analyze(ctx context.Context, paths []string, out io.Writer) error {
	if len(paths) == 0 {
		if a.config.Analysis.InputPath == "" {
			return fmt.Errorf("no input file given and analysis.input_path is not set")
		}
		paths = []string{a.config.Analysis.InputPath}
	}

	opts := a.config.Analysis.ReportOptions()
	results := make([]analysisResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			fileCtx := a.logger.With().Str(loggers.FieldInputPath, path).Logger().WithContext(ctx)
			report, err := a.reportPipeline.Run(fileCtx, path, opts)
			results[i] = analysisResult{report: report, err: err}
		}(i, path)
	}
	wg.Wait()

	csvFileNames := a.csvFileNames(paths)
	var firstErr error
	for i, path := range paths {
		if err := a.present(ctx, path, csvFileNames[i], len(paths) > 1, results[i], out); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (a *Analyzer) present(ctx context.Context, path, csvFileName string, multi bool, result analysisResult, out io.Writer) error {
	if multi {
		if _, err := fmt.Fprintf(out, "==> %s <==\n", path); err != nil {
			return err
		}
	}

	if result.err != nil {
		a.logger.Error().Err(result.err).Str(loggers.FieldInputPath, path).Msg("failed to read log file")
		if _, err := fmt.Fprintf(out, "Error: %v\n%s\n", result.err, noDataMessage); err != nil {
			return err
		}
		return result.err
	}

	if result.report.IsEmpty() {
		_, err := fmt.Fprintln(out, noDataMessage)
		return err
	}

	if err := exporters.WriteText(out, result.report); err != nil {
		return fmt.Errorf("failed to print report for %q: %w", path, err)
	}

	if err := a.csvExporter.Export(ctx, csvFileName, result.report); err != nil {
		return fmt.Errorf("failed to export report for %q: %w", path, err)
	}
	_, err := fmt.Fprintf(out, "\nResults saved to %s\n", filepath.Join(a.outputDir, csvFileName))
	return err
}

// csvFileNames keeps the configured name for a single input and prefixes it with
// each input's base name otherwise, e.g. "access_log_analysis_results.csv".
// Inputs sharing a base name, such as a/access.log and b/access.txt, also get
// their 1-based argument position: "access_1_...", "access_2_...".
// The returned names are pairwise distinct.
func (a *Analyzer) csvFileNames(paths []string) []string {
	names := make([]string, len(paths))
	if len(paths) == 1 {
		names[0] = a.csvFileName
		return names
	}

	bases := make([]string, len(paths))
	baseCount := make(map[string]int, len(paths))
	for i, path := range paths {
		bases[i] = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		baseCount[bases[i]]++
	}

	used := make(map[string]bool, len(paths))
	for i, base := range bases {
		name := base + "_" + a.csvFileName
		if baseCount[base] > 1 || used[name] {
			for n := i + 1; ; n++ {
				name = fmt.Sprintf("%s_%d_%s", base, n, a.csvFileName)
				if !used[name] {
					break
				}
			}
		}
		used[name] = true
		names[i] = name
	}
	return names
}
