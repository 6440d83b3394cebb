package get

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/service/resolver"
	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// MockReportResolver implements ReportResolver for tests
type MockReportResolver struct {
	mock.Mock
}

func (m *MockReportResolver) ResolveCurrent(ctx context.Context, rc *resolver.Context) (*storage.Report, error) {
	args := m.Called(ctx, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Report), args.Error(1)
}

func TestGetCurrentReport_Success(t *testing.T) {
	mockResolver := new(MockReportResolver)
	mockResolver.On("ResolveCurrent", mock.Anything, mock.Anything).
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning", Reporter: "J. Doe"}, nil)

	logger := slog.Default()
	handler := GetCurrentReport(logger, mockResolver)

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2024-03-01&shift=morning", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseReport
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "rep-1", resp.Report.ID)
	assert.Equal(t, "J. Doe", resp.Report.Reporter)

	mockResolver.AssertExpectations(t)
}

func TestGetCurrentReport_EmptySlot(t *testing.T) {
	mockResolver := new(MockReportResolver)
	mockResolver.On("ResolveCurrent", mock.Anything, mock.Anything).Return(nil, nil)

	handler := GetCurrentReport(slog.Default(), mockResolver)

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2024-03-01&shift=evening", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ResponseReport
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "empty", resp.Status)
	assert.Nil(t, resp.Report)
}

func TestGetCurrentReport_MissingParams(t *testing.T) {
	mockResolver := new(MockReportResolver)
	handler := GetCurrentReport(slog.Default(), mockResolver)

	req := httptest.NewRequest(http.MethodGet, "/api/report?date=2024-03-01", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockResolver.AssertNotCalled(t, "ResolveCurrent", mock.Anything, mock.Anything)
}
