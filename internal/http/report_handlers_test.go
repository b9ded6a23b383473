package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"access-log-analytics/internal/models"
	"access-log-analytics/internal/reports"
	reportmocks "access-log-analytics/internal/reports/mocks"
	"access-log-analytics/internal/shared/svcerrors"
	"access-log-analytics/internal/shared/ulid"
	"access-log-analytics/internal/stores"
	storemocks "access-log-analytics/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testReportID = "01HZX3M8Q6R8V1T2W3Y4Z5A6B7"

func testDefaultOptions() reports.Options {
	return reports.Options{
		FailedLoginThreshold: 10,
		RequestsPerIPTopN:    models.TopNAll,
		EndpointsTopN:        1,
		SuspiciousTopN:       models.TopNAll,
		BreakdownsTopN:       10,
		BreakdownAttributes:  reports.DefaultBreakdownAttributes(),
	}
}

func testReport() *reports.Report {
	return &reports.Report{
		RecordCount:          3,
		FailedLoginThreshold: 1,
		RequestsPerIP: reports.Table{
			Name: reports.TableRequestsPerIP, KeyHeader: "IP Address", CountHeader: "Request Count",
			Rows: models.AggregationResult{{Key: "203.0.113.5", Count: 2}, {Key: "10.0.0.1", Count: 1}},
		},
		MostAccessedEndpoints: reports.Table{
			Name: reports.TableMostAccessedEndpoints, KeyHeader: "URL", CountHeader: "Access Count",
			Rows: models.AggregationResult{{Key: "/login", Count: 2}},
		},
		SuspiciousActivity: reports.Table{
			Name: reports.TableSuspiciousActivity, KeyHeader: "IP Address", CountHeader: "Failed Login Attempts",
			Rows: models.AggregationResult{{Key: "203.0.113.5", Count: 2}},
		},
		Breakdowns: []reports.Table{},
	}
}

type routerFixture struct {
	pipeline *reportmocks.MockReportPipeline
	store    *storemocks.MockReportStore
	router   http.Handler
}

func newRouterFixture(t *testing.T, maxBodyBytes int64) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	pipeline := reportmocks.NewMockReportPipeline(ctrl)
	store := storemocks.NewMockReportStore(ctrl)
	router := NewRouter(pipeline, store, RouterOptions{
		DefaultReportOptions: testDefaultOptions(),
		MaxBodyBytes:         maxBodyBytes,
	}, zerolog.Nop())
	return &routerFixture{pipeline: pipeline, store: store, router: router}
}

func (f *routerFixture) do(method, target string, body io.Reader) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(method, target, body))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var errorResponse ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errorResponse))
	return errorResponse
}

func TestCreateReport_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		query        string
		expectedOpts func() reports.Options
	}{
		{
			name:         "server defaults",
			query:        "",
			expectedOpts: testDefaultOptions,
		},
		{
			name:  "query overrides",
			query: "?threshold=0&top_ip=5&top_endpoints=all&top_suspicious=1&top_breakdowns=ALL",
			expectedOpts: func() reports.Options {
				return reports.Options{
					FailedLoginThreshold: 0,
					RequestsPerIPTopN:    5,
					EndpointsTopN:        models.TopNAll,
					SuspiciousTopN:       1,
					BreakdownsTopN:       models.TopNAll,
					BreakdownAttributes:  reports.DefaultBreakdownAttributes(),
				}
			},
		},
		{
			name:  "breakdown attributes",
			query: "?breakdowns=URL,status&breakdowns=ip",
			expectedOpts: func() reports.Options {
				opts := testDefaultOptions()
				opts.BreakdownAttributes = []models.Attribute{models.AttributeURL, models.AttributeStatus, models.AttributeIPAddress}
				return opts
			},
		},
		{
			name:  "blank breakdowns disables breakdown tables",
			query: "?breakdowns=",
			expectedOpts: func() reports.Options {
				opts := testDefaultOptions()
				opts.BreakdownAttributes = []models.Attribute{}
				return opts
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, 0)
			report := testReport()

			f.pipeline.EXPECT().
				RunReader(gomock.Any(), gomock.Any(), tt.expectedOpts()).
				DoAndReturn(func(ctx context.Context, r io.Reader, opts reports.Options) (*reports.Report, error) {
					body, err := io.ReadAll(r)
					require.NoError(t, err)
					assert.Equal(t, "raw log", string(body))
					return report, nil
				})

			var storedID string
			f.store.EXPECT().
				Put(gomock.Any(), gomock.Any(), report).
				DoAndReturn(func(ctx context.Context, reportID string, r *reports.Report) error {
					storedID = reportID
					return nil
				})

			rr := f.do(http.MethodPost, "/reports"+tt.query, strings.NewReader("raw log"))

			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))

			var resp CreateReportResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, ulid.IsValid(resp.ReportID))
			assert.Equal(t, storedID, resp.ReportID)
			assert.Equal(t, report, resp.Report)
		})
	}
}

func TestCreateReport_InvalidQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		query           string
		expectedMessage string
	}{
		{
			name:            "negative threshold",
			query:           "threshold=-1",
			expectedMessage: `invalid query parameter threshold="-1": must be a non-negative integer`,
		},
		{
			name:            "non numeric threshold",
			query:           "threshold=ten",
			expectedMessage: `invalid query parameter threshold="ten": must be a non-negative integer`,
		},
		{
			name:            "threshold overflow",
			query:           "threshold=99999999999999999999999",
			expectedMessage: `invalid query parameter threshold="99999999999999999999999": must be a non-negative integer`,
		},
		{
			name:            "zero top n",
			query:           "top_ip=0",
			expectedMessage: `invalid query parameter top_ip="0": must be "all" or a positive integer`,
		},
		{
			name:            "unknown top n",
			query:           "top_breakdowns=most",
			expectedMessage: `invalid query parameter top_breakdowns="most": must be "all" or a positive integer`,
		},
		{
			name:            "unknown breakdown attribute",
			query:           "breakdowns=status,referer",
			expectedMessage: `invalid query parameter breakdowns="referer": must be one of ip, url, status, method, timezone`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, 0)
			rr := f.do(http.MethodPost, "/reports?"+tt.query, strings.NewReader("raw log"))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			errorResponse := decodeError(t, rr)
			assert.Equal(t, "REP_1000", errorResponse.ErrorCode)
			assert.Equal(t, tt.expectedMessage, errorResponse.ErrorDescription)
		})
	}
}

func TestCreateReport_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		setup          func(f *routerFixture)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "no data to process",
			setup: func(f *routerFixture) {
				f.pipeline.EXPECT().RunReader(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&reports.Report{}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "REP_1001",
		},
		{
			name: "body read failure",
			setup: func(f *routerFixture) {
				f.pipeline.EXPECT().RunReader(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&reports.Report{}, svcerrors.NewInternalError("ING_9000", assert.AnError))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "ING_9000",
		},
		{
			name: "report id conflict",
			setup: func(f *routerFixture) {
				f.pipeline.EXPECT().RunReader(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReport(), nil)
				f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(stores.ErrReportAlreadyExist)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "REP_4090",
		},
		{
			name: "report store failure",
			setup: func(f *routerFixture) {
				f.pipeline.EXPECT().RunReader(gomock.Any(), gomock.Any(), gomock.Any()).Return(testReport(), nil)
				f.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "REP_9000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, 0)
			tt.setup(f)

			rr := f.do(http.MethodPost, "/reports", strings.NewReader("raw log"))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rr).ErrorCode)
		})
	}
}

func TestCreateReport_BodyTooLarge(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 8)
	f.pipeline.EXPECT().
		RunReader(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r io.Reader, opts reports.Options) (*reports.Report, error) {
			_, err := io.ReadAll(r)
			require.Error(t, err)
			return &reports.Report{}, svcerrors.NewInternalError("ING_9000", fmt.Errorf("logFileReadFailed: %w", err))
		})

	rr := f.do(http.MethodPost, "/reports", strings.NewReader("a log body longer than eight bytes"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	errorResponse := decodeError(t, rr)
	assert.Equal(t, "REP_1002", errorResponse.ErrorCode)
	assert.Equal(t, "request body exceeds 8 bytes", errorResponse.ErrorDescription)
}

func TestGetReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		reportID       string
		setup          func(f *routerFixture)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:     "found",
			reportID: testReportID,
			setup: func(f *routerFixture) {
				f.store.EXPECT().Get(gomock.Any(), testReportID).Return(testReport(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "not found",
			reportID: testReportID,
			setup: func(f *routerFixture) {
				f.store.EXPECT().Get(gomock.Any(), testReportID).Return(nil, stores.ErrReportNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "REP_4040",
		},
		{
			name:           "malformed id never reaches the store",
			reportID:       "not-a-ulid",
			setup:          func(f *routerFixture) {},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "REP_4040",
		},
		{
			name:     "store failure",
			reportID: testReportID,
			setup: func(f *routerFixture) {
				f.store.EXPECT().Get(gomock.Any(), testReportID).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "REP_9000",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newRouterFixture(t, 0)
			tt.setup(f)

			rr := f.do(http.MethodGet, "/reports/"+tt.reportID, nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rr).ErrorCode)
				return
			}
			var report reports.Report
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
			assert.Equal(t, testReport(), &report)
		})
	}
}

func TestGetReportCSV(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 0)
	f.store.EXPECT().Get(gomock.Any(), testReportID).Return(testReport(), nil)

	rr := f.do(http.MethodGet, "/reports/"+testReportID+"/csv", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, contentTypeCSV, rr.Header().Get(headerContentType))
	assert.Equal(t, `attachment; filename="`+testReportID+`.csv"`, rr.Header().Get(headerContentDisposition))
	assert.Equal(t, "Requests per IP\n"+
		"IP Address,Request Count\n"+
		"203.0.113.5,2\n"+
		"10.0.0.1,1\n"+
		"\n"+
		"Most Accessed Endpoint\n"+
		"URL,Access Count\n"+
		"/login,2\n"+
		"\n"+
		"Suspicious Activity\n"+
		"IP Address,Failed Login Attempts\n"+
		"203.0.113.5,2\n", rr.Body.String())
}

func TestGetReportCSV_NotFound(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 0)
	f.store.EXPECT().Get(gomock.Any(), testReportID).Return(nil, stores.ErrReportNotFound)

	rr := f.do(http.MethodGet, "/reports/"+testReportID+"/csv", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, contentTypeJSON, rr.Header().Get(headerContentType))
	assert.Equal(t, "REP_4040", decodeError(t, rr).ErrorCode)
}

func TestListReports(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 0)
	f.store.EXPECT().List(gomock.Any()).Return([]string{testReportID}, nil)

	rr := f.do(http.MethodGet, "/reports", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"reportIds":["`+testReportID+`"]}`, rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(t, 0)
	rr := f.do(http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
}
