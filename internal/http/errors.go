package http

import (
	"fmt"

	"access-log-analytics/internal/shared/svcerrors"
)

// Report API errors
const (
	codeInvalidReportQuery = "REP_1000"
	codeNoDataToProcess    = "REP_1001"
	codeRequestTooLarge    = "REP_1002"

	codeReportNotFound = "REP_4040"

	codeReportIDConflict = "REP_4090"

	codeInternalReportStoreFailed = "REP_9000"
)

// errInvalidReportQuery returns an error for a malformed query parameter of POST /reports.
func errInvalidReportQuery(param, value, expected string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportQuery,
		fmt.Sprintf("invalid query parameter %s=%q: %s", param, value, expected), cause)
}

// errNoDataToProcess returns an error when the uploaded log yields no record.
func errNoDataToProcess() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoDataToProcess, "no data to process", nil)
}

func errRequestTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeRequestTooLarge,
		fmt.Sprintf("request body exceeds %d bytes", limit), cause)
}

func errReportNotFound(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %q not found", reportID), cause)
}

// errReportIDConflict returns an error when a freshly generated report ID is already taken.
func errReportIDConflict(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportIDConflict,
		fmt.Sprintf("report %q already exists", reportID), cause)
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
