package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lbseries/internal/domain"
	"lbseries/internal/report"
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
)

// MockLifecycleService is a mock implementation of service.LifecycleService.
type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) Autoname(ctx context.Context, doc *domain.TransactionDocument, opts service.Options) (*service.NameResult, error) {
	args := m.Called(ctx, doc, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NameResult), args.Error(1)
}

func (m *MockLifecycleService) Validate(ctx context.Context, doc, prev *domain.TransactionDocument, opts service.Options) (*domain.TransactionDocument, error) {
	args := m.Called(ctx, doc, prev, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionDocument), args.Error(1)
}

func (m *MockLifecycleService) Record(ctx context.Context, doc *domain.TransactionDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockQueryService is a mock implementation of service.QueryService.
type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) WarehouseQuery(ctx context.Context, q service.PickerQuery) ([]warehouse.Option, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]warehouse.Option), args.Error(1)
}

func (m *MockQueryService) AddressQuery(ctx context.Context, q service.PickerQuery) ([]warehouse.Option, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]warehouse.Option), args.Error(1)
}

func (m *MockQueryService) ValidWarehouses(ctx context.Context, location string) ([]domain.Warehouse, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LocationCoverage(ctx context.Context) ([]report.CoverageRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.CoverageRow), args.Error(1)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(subject string, ttl time.Duration, scopes ...string) (string, error) {
	args := m.Called(subject, ttl, scopes)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}
