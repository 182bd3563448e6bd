package service

import (
	"context"
	"errors"
	"fmt"

	"lbseries/internal/domain"
	"lbseries/internal/gst"
	"lbseries/internal/port"
	"lbseries/internal/report"
	"lbseries/internal/warehouse"
)

// ReportService builds reports over location reference data.
type ReportService interface {
	LocationCoverage(ctx context.Context) ([]report.CoverageRow, error)
}

type reportService struct {
	locations  port.LocationRepository
	warehouses port.WarehouseRepository
	addresses  port.AddressRepository
	resolver   *warehouse.Resolver
	deriver    *gst.Deriver
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	locations port.LocationRepository,
	warehouses port.WarehouseRepository,
	addresses port.AddressRepository,
	resolver *warehouse.Resolver,
	deriver *gst.Deriver,
) ReportService {
	return &reportService{
		locations:  locations,
		warehouses: warehouses,
		addresses:  addresses,
		resolver:   resolver,
		deriver:    deriver,
	}
}

func (s *reportService) LocationCoverage(ctx context.Context) ([]report.CoverageRow, error) {
	locs, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.LocationCoverage: %w", err)
	}

	rows := make([]report.CoverageRow, 0, len(locs))
	for i := range locs {
		row, err := s.coverage(ctx, &locs[i])
		if err != nil {
			return nil, fmt.Errorf("report.LocationCoverage: %s: %w", locs[i].Name, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *reportService) coverage(ctx context.Context, loc *domain.Location) (report.CoverageRow, error) {
	row := report.CoverageRow{
		Location:        loc.Name,
		LocationName:    loc.LocationName,
		Code:            loc.Code,
		LinkedAddress:   loc.LinkedAddress,
		LinkedWarehouse: loc.LinkedWarehouse,
	}
	if loc.Code == "" {
		row.Problems = append(row.Problems, "missing location code")
	}

	if loc.LinkedAddress == "" {
		row.Problems = append(row.Problems, "missing linked address")
	} else {
		addr, err := s.addresses.GetByName(ctx, loc.LinkedAddress)
		switch {
		case err == nil:
			row.PlaceOfSupply = s.deriver.Derive(addr)
		case errors.Is(err, domain.ErrNotFound):
			row.Problems = append(row.Problems, "linked address does not exist")
		default:
			return row, err
		}
	}

	if loc.LinkedWarehouse == "" {
		row.Problems = append(row.Problems, "missing linked warehouse")
		return row, nil
	}
	wh, err := s.warehouses.GetByName(ctx, loc.LinkedWarehouse)
	switch {
	case err == nil:
		row.WarehouseGroup = wh.IsGroup
	case errors.Is(err, domain.ErrNotFound):
		row.Problems = append(row.Problems, "linked warehouse does not exist")
		return row, nil
	default:
		return row, err
	}

	valid, err := s.resolver.ValidFor(ctx, loc)
	if err != nil {
		return row, err
	}
	row.ValidWarehouses = warehouse.Names(valid)
	if len(valid) == 0 {
		row.Problems = append(row.Problems, "no assignable warehouse")
	}
	return row, nil
}
