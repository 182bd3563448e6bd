package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lbseries/internal/domain"
	"lbseries/internal/location"
	"lbseries/internal/port"
	"lbseries/internal/warehouse"
)

// PickerFilters are the filters a form script passes with a link query.
type PickerFilters struct {
	Location         string `form:"location" json:"location"`
	ShippingLocation string `form:"shipping_location" json:"shipping_location"`
	DispatchLocation string `form:"dispatch_location" json:"dispatch_location"`
	ParentDocType    string `form:"parent_doctype" json:"parent_doctype"`
	Parent           string `form:"parent" json:"parent"`
}

// PickerQuery is the host's link search request.
type PickerQuery struct {
	DocType     string        `form:"doctype" json:"doctype"`
	Txt         string        `form:"txt" json:"txt"`
	SearchField string        `form:"searchfield" json:"searchfield"`
	Start       int           `form:"start" json:"start"`
	PageLen     int           `form:"page_len" json:"page_len"`
	Filters     PickerFilters `form:"-" json:"filters"`
}

// QueryService answers interactive picker searches.
type QueryService interface {
	WarehouseQuery(ctx context.Context, q PickerQuery) ([]warehouse.Option, error)
	AddressQuery(ctx context.Context, q PickerQuery) ([]warehouse.Option, error)
	ValidWarehouses(ctx context.Context, location string) ([]domain.Warehouse, error)
}

type queryService struct {
	warehouses *warehouse.Resolver
	validator  *location.Validator
	saved      port.SavedDocumentRepository
}

// NewQueryService creates a new QueryService implementation.
func NewQueryService(warehouses *warehouse.Resolver, validator *location.Validator, saved port.SavedDocumentRepository) QueryService {
	return &queryService{warehouses: warehouses, validator: validator, saved: saved}
}

func (s *queryService) WarehouseQuery(ctx context.Context, q PickerQuery) ([]warehouse.Option, error) {
	loc, err := s.pickerLocation(ctx, q.Filters)
	if err != nil {
		return nil, err
	}
	if loc == "" {
		return []warehouse.Option{}, nil
	}
	valid, err := s.warehouses.ValidForLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	return warehouse.Search(valid, q.Txt, q.Start, q.PageLen), nil
}

func (s *queryService) AddressQuery(ctx context.Context, q PickerQuery) ([]warehouse.Option, error) {
	loc := firstNonEmpty(q.Filters.DispatchLocation, q.Filters.ShippingLocation, q.Filters.Location)
	if loc == "" {
		return []warehouse.Option{}, nil
	}
	addrs, err := s.validator.ValidAddresses(ctx, loc)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(q.Txt))
	var out []warehouse.Option
	for i := range addrs {
		a := &addrs[i]
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.Name), needle) &&
			!strings.Contains(strings.ToLower(a.AddressTitle), needle) {
			continue
		}
		out = append(out, warehouse.Option{Value: a.Name, Label: a.AddressTitle})
	}
	return warehouse.Page(out, q.Start, q.PageLen), nil
}

func (s *queryService) ValidWarehouses(ctx context.Context, loc string) ([]domain.Warehouse, error) {
	valid, err := s.warehouses.ValidForLocation(ctx, loc)
	if err != nil {
		return nil, err
	}
	if valid == nil {
		valid = []domain.Warehouse{}
	}
	return valid, nil
}

// pickerLocation picks the location whose warehouses a picker may offer. A
// saved parent document overrides the filters with its own active location.
func (s *queryService) pickerLocation(ctx context.Context, f PickerFilters) (string, error) {
	if f.ParentDocType != "" && f.Parent != "" {
		parent, err := s.saved.GetSaved(ctx, domain.DocType(f.ParentDocType), f.Parent)
		switch {
		case err == nil:
			if schema, ok := domain.SchemaFor(parent.DocType); ok {
				return parent.LocationFor(location.ActiveRole(parent, schema)), nil
			}
			return parent.Location, nil
		case !errors.Is(err, domain.ErrNotFound):
			return "", fmt.Errorf("query.pickerLocation: loading parent: %w", err)
		}
	}
	return firstNonEmpty(f.DispatchLocation, f.ShippingLocation, f.Location), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
