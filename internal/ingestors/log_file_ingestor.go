package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"access-log-analytics/internal/models"
	"access-log-analytics/internal/parsers"
	"access-log-analytics/internal/shared/loggers"
	"access-log-analytics/internal/shared/metrics"
	"access-log-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=log_file_ingestor.go -destination=./mocks/log_file_ingestor_mock.go -package=mocks
type LogFileIngestor interface {
	// Build reads the log file at filePath into a RecordStore.
	// The returned store is never nil: on a missing file (ING_4040) or any other
	// read failure (ING_9000) it is empty and the error tells the caller why.
	Build(ctx context.Context, filePath string) (*models.RecordStore, error)
	// Read does the same for an already opened stream.
	Read(ctx context.Context, r io.Reader) (*models.RecordStore, error)
}

type logFileIngestor struct {
	lineParser parsers.LineParser
}

func NewLogFileIngestor(lineParser parsers.LineParser) LogFileIngestor {
	return &logFileIngestor{lineParser: lineParser}
}

func (i *logFileIngestor) Build(ctx context.Context, filePath string) (*models.RecordStore, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldInputPath, filePath).Msg("started reading log file")

	file, err := os.Open(filePath)
	if err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, fs.ErrNotExist) {
			svcErr = errLogFileNotFound(filePath, err)
		} else {
			svcErr = errInternalLogFileReadFailed(err)
		}
		metricFileReadTotal.WithLabelValues(svcErr.Code).Inc()
		return models.NewRecordStore(), svcErr
	}
	defer file.Close()

	return i.Read(ctx, file)
}

func (i *logFileIngestor) Read(ctx context.Context, r io.Reader) (*models.RecordStore, error) {
	logger := loggers.Ctx(ctx)

	if r == nil {
		svcErr := errInternalLogFileReadFailed(errors.New("nil reader"))
		metricFileReadTotal.WithLabelValues(svcErr.Code).Inc()
		return models.NewRecordStore(), svcErr
	}

	store := models.NewRecordStore()
	rejected := 0

	// bufio.Reader instead of Scanner: no upper bound on line length.
	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			if record, ok := i.lineParser.Parse(line); ok {
				store.Append(record)
			} else {
				rejected++
			}
		}
		if readErr == nil {
			continue
		}
		if errors.Is(readErr, io.EOF) {
			break
		}

		svcErr := errInternalLogFileReadFailed(readErr)
		metricFileReadTotal.WithLabelValues(svcErr.Code).Inc()
		return models.NewRecordStore(), svcErr
	}

	metricLinesTotal.WithLabelValues(metrics.ValueAccepted).Add(float64(store.Len()))
	metricLinesTotal.WithLabelValues(metrics.ValueRejected).Add(float64(rejected))
	metricFileReadTotal.WithLabelValues(metrics.ValueNoError).Inc()

	logger.Debug().
		Int(loggers.FieldRecordCount, store.Len()).
		Int(loggers.FieldRejectedCount, rejected).
		Msg("finished reading log file")

	return store, nil
}
