package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cir0cuit/Shift-Reporting-Tool/internal/storage"
)

// MockReportStorage implements ReportStorage for tests
type MockReportStorage struct {
	mock.Mock
}

func (m *MockReportStorage) GetReportByDateAndShift(ctx context.Context, date, shift string) (*storage.Report, error) {
	args := m.Called(ctx, date, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Report), args.Error(1)
}

func (m *MockReportStorage) CreateReport(ctx context.Context, date, shift string) (*storage.Report, error) {
	args := m.Called(ctx, date, shift)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Report), args.Error(1)
}

func (m *MockReportStorage) UpdateReport(ctx context.Context, rep *storage.Report) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportStorage) AddProduct(ctx context.Context, p *storage.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func TestResolveCurrent_Found(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning", Reporter: "J. Doe"}, nil)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	rep, err := svc.ResolveCurrent(context.Background(), rc)
	require.NoError(t, err)
	require.NotNil(t, rep)
	assert.Equal(t, "J. Doe", rep.Reporter)
	assert.Equal(t, "rep-1", rc.ReportID())

	mockStorage.AssertExpectations(t)
}

func TestResolveCurrent_AbsentDoesNotCreate(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(nil, storage.ErrReportNotFound)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	rep, err := svc.ResolveCurrent(context.Background(), rc)
	require.NoError(t, err)
	assert.Nil(t, rep)
	assert.Empty(t, rc.ReportID())

	mockStorage.AssertNotCalled(t, "CreateReport", mock.Anything, mock.Anything, mock.Anything)
	mockStorage.AssertExpectations(t)
}

func TestGetOrCreateReportID_IdempotentWithinContext(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(nil, storage.ErrReportNotFound).Once()
	mockStorage.On("CreateReport", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-new", Date: "2024-03-01", Shift: "morning"}, nil).Once()
	mockStorage.On("UpdateReport", mock.Anything, mock.Anything).Return(nil).Once()

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	id1, err := svc.GetOrCreateReportID(context.Background(), rc, "J. Doe")
	require.NoError(t, err)
	id2, err := svc.GetOrCreateReportID(context.Background(), rc, "J. Doe")
	require.NoError(t, err)

	assert.Equal(t, "rep-new", id1)
	assert.Equal(t, id1, id2)

	mockStorage.AssertNumberOfCalls(t, "CreateReport", 1)
	mockStorage.AssertExpectations(t)
}

func TestGetOrCreateReportID_ReturnsExistingFromStore(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning"}, nil)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	id, err := svc.GetOrCreateReportID(context.Background(), rc, "J. Doe")
	require.NoError(t, err)
	assert.Equal(t, "rep-1", id)

	mockStorage.AssertNotCalled(t, "CreateReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestContextSwitch_InvalidatesCacheWithoutCreating(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning"}, nil)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "evening").
		Return(nil, storage.ErrReportNotFound)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	_, err := svc.ResolveCurrent(context.Background(), rc)
	require.NoError(t, err)
	assert.Equal(t, "rep-1", rc.ReportID())

	rc.Switch("2024-03-01", "evening")
	assert.Empty(t, rc.ReportID())

	rep, err := svc.ResolveCurrent(context.Background(), rc)
	require.NoError(t, err)
	assert.Nil(t, rep)

	// switching back finds the original report, no duplicate created
	rc.Switch("2024-03-01", "morning")
	id, err := svc.GetOrCreateReportID(context.Background(), rc, "")
	require.NoError(t, err)
	assert.Equal(t, "rep-1", id)

	mockStorage.AssertNotCalled(t, "CreateReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestSwitch_SameSelectionKeepsCache(t *testing.T) {
	rc := NewContext("2024-03-01", "morning")
	rc.reportID = "rep-1"

	rc.Switch("2024-03-01", "morning")
	assert.Equal(t, "rep-1", rc.ReportID())
}

func TestSaveReporter_PersistsIntoSlot(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning", Reporter: ""}, nil)
	mockStorage.On("UpdateReport", mock.Anything, mock.MatchedBy(func(rep *storage.Report) bool {
		return rep.ID == "rep-1" && rep.Reporter == "J. Doe"
	})).Return(nil)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	id, err := svc.SaveReporter(context.Background(), rc, "J. Doe")
	require.NoError(t, err)
	assert.Equal(t, "rep-1", id)

	mockStorage.AssertExpectations(t)
}

func TestAddProduct_ValidatesBeforeAnyWrite(t *testing.T) {
	mockStorage := new(MockReportStorage)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	_, err := svc.AddProduct(context.Background(), rc, "", &storage.Product{Comment: "no required fields"})

	var valErr *storage.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.ElementsMatch(t, []string{"production_order", "name", "h_code"}, valErr.Missing)

	mockStorage.AssertNotCalled(t, "CreateReport", mock.Anything, mock.Anything, mock.Anything)
	mockStorage.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
}

func TestAddProduct_SetsOwningReport(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(&storage.Report{ID: "rep-1", Date: "2024-03-01", Shift: "morning"}, nil)
	mockStorage.On("AddProduct", mock.Anything, mock.MatchedBy(func(p *storage.Product) bool {
		return p.ReportID == "rep-1"
	})).Return(int64(7), nil)

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	id, err := svc.AddProduct(context.Background(), rc, "J. Doe", &storage.Product{
		ProductionOrder: "PO-100",
		Name:            "Widget",
		HCode:           "H12",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	mockStorage.AssertExpectations(t)
}

func TestGetOrCreateReportID_StorageFailureSurfaced(t *testing.T) {
	mockStorage := new(MockReportStorage)
	mockStorage.On("GetReportByDateAndShift", mock.Anything, "2024-03-01", "morning").
		Return(nil, errors.New("disk gone"))

	svc := NewService(mockStorage)
	rc := NewContext("2024-03-01", "morning")

	_, err := svc.GetOrCreateReportID(context.Background(), rc, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}
