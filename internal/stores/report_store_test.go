package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"access-log-analytics/internal/models"
	"access-log-analytics/internal/reports"
	"access-log-analytics/internal/shared/filestorages"
	"access-log-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testReportID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

func newTestReport() *reports.Report {
	return &reports.Report{
		RecordCount:          3,
		FailedLoginThreshold: 10,
		RequestsPerIP: reports.Table{
			Name:        reports.TableRequestsPerIP,
			KeyHeader:   "IP Address",
			CountHeader: "Request Count",
			Rows:        models.AggregationResult{{Key: "10.0.0.1", Count: 2}, {Key: "10.0.0.2", Count: 1}},
		},
		MostAccessedEndpoints: reports.Table{
			Name:        reports.TableMostAccessedEndpoints,
			KeyHeader:   "URL",
			CountHeader: "Access Count",
			Rows:        models.AggregationResult{{Key: "/login", Count: 3}},
		},
		SuspiciousActivity: reports.Table{
			Name:        reports.TableSuspiciousActivity,
			KeyHeader:   "IP Address",
			CountHeader: "Failed Login Attempts",
			Rows:        models.AggregationResult{},
		},
		Breakdowns: []reports.Table{},
	}
}

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

func TestReportStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := newTestReport()
	expectedJSON, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Put(ctx, "reports/"+testReportID+".json", gomock.Any(), filestorages.PutOptions{AllowOverwrite: false}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expectedJSON, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, store.Put(ctx, testReportID, report))
}

func TestReportStore_Put_AlreadyExists(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileAlreadyExists)

	err := store.Put(context.Background(), testReportID, newTestReport())
	assert.ErrorIs(t, err, ErrReportAlreadyExist)
}

func TestReportStore_Put_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	storageErr := errors.New("disk full")
	mockFileStorage.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storageErr)

	err := store.Put(context.Background(), testReportID, newTestReport())
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "failed to put report")
}

func TestReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	report := newTestReport()
	data, _ := json.Marshal(report)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), "reports/"+testReportID+".json").
		Return(nopReadCloser{bytes.NewReader(data)}, nil)

	got, err := store.Get(context.Background(), testReportID)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestReportStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, filestorages.ErrFileNotFound)

	got, err := store.Get(context.Background(), testReportID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestReportStore_Get_InvalidJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nopReadCloser{bytes.NewReader([]byte(`{not json`))}, nil)

	got, err := store.Get(context.Background(), testReportID)
	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal report")
}

func TestReportStore_List(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	mockFileStorage.EXPECT().
		List(gomock.Any(), "reports").
		Return([]string{"reports/01ARZ3NDEKTSV4RRFFQ69G5FAV.json", "reports/notes.txt", "reports/01BX5ZZKBKACTAV9WEVGEMMVRZ.json"}, nil)

	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"01ARZ3NDEKTSV4RRFFQ69G5FAV", "01BX5ZZKBKACTAV9WEVGEMMVRZ"}, ids)
}

func TestReportStore_RoundTripOnDisk(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewReportStore(fileStorage)
	ctx := context.Background()

	report := newTestReport()
	require.NoError(t, store.Put(ctx, testReportID, report))
	assert.ErrorIs(t, store.Put(ctx, testReportID, report), ErrReportAlreadyExist)

	got, err := store.Get(ctx, testReportID)
	require.NoError(t, err)
	assert.Equal(t, report, got)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{testReportID}, ids)
}
