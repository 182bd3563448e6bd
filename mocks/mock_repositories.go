package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lbseries/internal/domain"
)

// MockLocationRepo is a mock implementation of port.LocationRepository.
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepo) List(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

// MockWarehouseRepo is a mock implementation of port.WarehouseRepository.
type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) GetByName(ctx context.Context, name string) (*domain.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepo) Descendants(ctx context.Context, name string) ([]domain.Warehouse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

// MockAddressRepo is a mock implementation of port.AddressRepository.
type MockAddressRepo struct {
	mock.Mock
}

func (m *MockAddressRepo) GetByName(ctx context.Context, name string) (*domain.Address, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

// MockFiscalYearRepo is a mock implementation of port.FiscalYearRepository.
type MockFiscalYearRepo struct {
	mock.Mock
}

func (m *MockFiscalYearRepo) ListCovering(ctx context.Context, date time.Time) ([]domain.FiscalYear, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

// MockDimensionRepo is a mock implementation of port.DimensionRepository.
type MockDimensionRepo struct {
	mock.Mock
}

func (m *MockDimensionRepo) IsEnabled(ctx context.Context, documentType string) (bool, error) {
	args := m.Called(ctx, documentType)
	return args.Bool(0), args.Error(1)
}

// MockSavedDocumentRepo is a mock implementation of port.SavedDocumentRepository.
type MockSavedDocumentRepo struct {
	mock.Mock
}

func (m *MockSavedDocumentRepo) GetSaved(ctx context.Context, docType domain.DocType, name string) (*domain.TransactionDocument, error) {
	args := m.Called(ctx, docType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDocument), args.Error(1)
}

func (m *MockSavedDocumentRepo) Save(ctx context.Context, doc *domain.TransactionDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockSeriesRepo is a mock implementation of port.SeriesRepository.
type MockSeriesRepo struct {
	mock.Mock
}

func (m *MockSeriesRepo) Next(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSeriesRepo) Current(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

// MockClientScriptRepo is a mock implementation of port.ClientScriptRepository.
type MockClientScriptRepo struct {
	mock.Mock
}

func (m *MockClientScriptRepo) Upsert(ctx context.Context, script *domain.ClientScript) error {
	args := m.Called(ctx, script)
	return args.Error(0)
}

func (m *MockClientScriptRepo) GetByName(ctx context.Context, name string) (*domain.ClientScript, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientScript), args.Error(1)
}

func (m *MockClientScriptRepo) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
