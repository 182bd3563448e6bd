package port

import (
	"context"
	"time"

	"lbseries/internal/domain"
)

// LocationRepository defines read access to Location reference data.
type LocationRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Location, error)
	List(ctx context.Context) ([]domain.Location, error)
}

// WarehouseRepository defines read access to the warehouse tree.
type WarehouseRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Warehouse, error)
	// Descendants returns every warehouse below name in the tree, excluding
	// name itself, ordered by name.
	Descendants(ctx context.Context, name string) ([]domain.Warehouse, error)
}

// AddressRepository defines read access to addresses.
type AddressRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Address, error)
}

// FiscalYearRepository defines read access to fiscal periods.
type FiscalYearRepository interface {
	// ListCovering returns enabled fiscal years with start <= date <= end,
	// latest start date first, each with its linked companies populated.
	ListCovering(ctx context.Context, date time.Time) ([]domain.FiscalYear, error)
}

// DimensionRepository defines read access to accounting dimensions.
type DimensionRepository interface {
	IsEnabled(ctx context.Context, documentType string) (bool, error)
}
