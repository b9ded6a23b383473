package ingestors

import (
	"fmt"

	"access-log-analytics/internal/shared/svcerrors"
)

// LogFileIngestor errors
const (
	codeLogFileNotFound = "ING_4040"

	codeInternalLogFileReadFailed = "ING_9000"
)

// errLogFileNotFound returns an error when the input log file does not exist.
func errLogFileNotFound(filePath string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, fmt.Sprintf("log file %q not found", filePath), cause)
}

// errInternalLogFileReadFailed returns an error for any other failure while reading the input.
func errInternalLogFileReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogFileReadFailed, fmt.Errorf("logFileReadFailed: %w", cause))
}

// IsLogFileNotFound reports whether err is the FileNotFound condition of LogFileIngestor.
func IsLogFileNotFound(err error) bool {
	return svcerrors.HasCode(err, codeLogFileNotFound)
}

// IsLogFileReadFailed reports whether err is the UnexpectedIO condition of LogFileIngestor.
func IsLogFileReadFailed(err error) bool {
	return svcerrors.HasCode(err, codeInternalLogFileReadFailed)
}
