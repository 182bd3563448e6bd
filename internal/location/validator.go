// Package location enforces location-driven field rules on transaction
// documents.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

// Validator checks location references and copies the data they imply onto
// documents.
type Validator struct {
	dimensions port.DimensionRepository
	locations  port.LocationRepository
	addresses  port.AddressRepository
	log        logrus.FieldLogger
}

// NewValidator creates a Validator.
func NewValidator(dimensions port.DimensionRepository, locations port.LocationRepository, addresses port.AddressRepository, log logrus.FieldLogger) *Validator {
	return &Validator{
		dimensions: dimensions,
		locations:  locations,
		addresses:  addresses,
		log:        log.WithField("component", "location"),
	}
}

// CheckDimension fails unless Location is an enabled accounting dimension.
func (v *Validator) CheckDimension(ctx context.Context) error {
	enabled, err := v.dimensions.IsEnabled(ctx, domain.LocationDimension)
	if err != nil {
		return fmt.Errorf("location.CheckDimension: %w", err)
	}
	if !enabled {
		return domain.ErrDimensionDisabled
	}
	return nil
}

// Primary is what ApplyPrimary resolved. Address is nil when the linked
// address record does not exist.
type Primary struct {
	Location *domain.Location
	Address  *domain.Address
}

// ApplyPrimary validates the document's primary location and copies its code,
// linked address, address display and GSTIN onto doc.
func (v *Validator) ApplyPrimary(ctx context.Context, doc *domain.TransactionDocument, schema *domain.Schema) (*Primary, error) {
	if doc.Location == "" {
		return nil, &domain.FieldError{Err: domain.ErrLocationRequired, Field: domain.FieldLocation}
	}
	loc, err := v.load(ctx, domain.FieldLocation, doc.Location)
	if err != nil {
		return nil, err
	}
	if loc.Code == "" {
		return nil, &domain.FieldError{Err: domain.ErrLocationCodeMissing, Field: domain.FieldLocation, Value: loc.Name}
	}
	if loc.LinkedAddress == "" {
		return nil, &domain.FieldError{Err: domain.ErrLocationAddressMissing, Field: domain.FieldLocation, Value: loc.Name}
	}

	doc.LocationCode = loc.Code
	addr, err := v.address(ctx, loc.LinkedAddress)
	if err != nil {
		return nil, err
	}
	if schema.Has(schema.AddressField()) {
		setAddress(doc, schema, loc.LinkedAddress, addr)
	}
	return &Primary{Location: loc, Address: addr}, nil
}

// ApplySecondary validates the shipping or dispatch location when the
// document carries one. Its address is filled when empty and must otherwise
// be the location's linked address.
func (v *Validator) ApplySecondary(ctx context.Context, doc *domain.TransactionDocument, schema *domain.Schema) (*domain.Location, error) {
	if schema.Secondary == "" {
		return nil, nil
	}
	field := string(schema.Secondary)
	name := doc.LocationFor(schema.Secondary)
	if name == "" {
		return nil, nil
	}
	loc, err := v.load(ctx, field, name)
	if err != nil {
		return nil, err
	}
	if loc.LinkedAddress == "" {
		return nil, &domain.FieldError{Err: domain.ErrLocationAddressMissing, Field: field, Value: loc.Name}
	}
	if loc.LinkedWarehouse == "" {
		return nil, &domain.FieldError{Err: domain.ErrLocationWarehouseMissing, Field: field, Value: loc.Name}
	}

	addrField := schema.SecondaryAddressField()
	switch current := doc.Get(addrField); {
	case current == "":
		doc.Set(addrField, loc.LinkedAddress)
	case current != loc.LinkedAddress:
		return nil, &domain.FieldError{
			Err:      domain.ErrAddressNotAllowed,
			Field:    addrField,
			Value:    current,
			Location: loc.Name,
			Allowed:  []string{loc.LinkedAddress},
		}
	}
	return loc, nil
}

// ActiveRole picks the location reference that drives warehouse and address
// resolution: dispatch, then shipping, then primary.
func ActiveRole(doc *domain.TransactionDocument, schema *domain.Schema) domain.LocationRole {
	for _, role := range []domain.LocationRole{domain.RoleDispatch, domain.RoleShipping} {
		if schema.Secondary == role && doc.LocationFor(role) != "" {
			return role
		}
	}
	return domain.RolePrimary
}

// ValidAddresses returns the addresses a secondary location permits.
func (v *Validator) ValidAddresses(ctx context.Context, name string) ([]domain.Address, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := v.locations.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("location.ValidAddresses: %w", err)
	}
	if loc.LinkedAddress == "" {
		return nil, nil
	}
	addr, err := v.addresses.GetByName(ctx, loc.LinkedAddress)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("location.ValidAddresses: %w", err)
	}
	return []domain.Address{*addr}, nil
}

func (v *Validator) load(ctx context.Context, field, name string) (*domain.Location, error) {
	loc, err := v.locations.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.FieldError{Err: domain.ErrNotFound, Field: field, Value: name}
		}
		return nil, fmt.Errorf("location.load: %q: %w", name, err)
	}
	return loc, nil
}

// address loads a linked address. A dangling link still gets copied, only
// without display text or GSTIN.
func (v *Validator) address(ctx context.Context, name string) (*domain.Address, error) {
	addr, err := v.addresses.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v.log.Warnf("location.address: linked address %q not found", name)
			return nil, nil
		}
		return nil, fmt.Errorf("location.address: %q: %w", name, err)
	}
	return addr, nil
}
