// Package warehouse resolves which warehouses a location permits and applies
// that set to document warehouse fields.
package warehouse

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

// Set is an ordered set of warehouse names.
type Set []string

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	for _, w := range s {
		if w == name {
			return true
		}
	}
	return false
}

// Single returns the only member of a one-element set.
func (s Set) Single() (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	return s[0], true
}

// Names builds a Set from warehouse records, keeping their order.
func Names(ws []domain.Warehouse) Set {
	out := make(Set, 0, len(ws))
	for i := range ws {
		out = append(out, ws[i].Name)
	}
	return out
}

// Resolver computes the valid warehouse set of a location.
type Resolver struct {
	locations  port.LocationRepository
	warehouses port.WarehouseRepository
	log        logrus.FieldLogger
}

// NewResolver creates a Resolver.
func NewResolver(locations port.LocationRepository, warehouses port.WarehouseRepository, log logrus.FieldLogger) *Resolver {
	return &Resolver{locations: locations, warehouses: warehouses, log: log.WithField("component", "warehouse")}
}

// ValidForLocation returns the assignable warehouses of a location by name.
// A missing location or one without a linked warehouse yields an empty set.
func (r *Resolver) ValidForLocation(ctx context.Context, name string) ([]domain.Warehouse, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := r.locations.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("warehouse.ValidForLocation: loading location %q: %w", name, err)
	}
	return r.ValidFor(ctx, loc)
}

// ValidFor returns the assignable warehouses under loc's linked warehouse:
// the warehouse itself when it is a leaf, every enabled leaf descendant when
// it is a group.
func (r *Resolver) ValidFor(ctx context.Context, loc *domain.Location) ([]domain.Warehouse, error) {
	if loc == nil || loc.LinkedWarehouse == "" {
		return nil, nil
	}
	linked, err := r.warehouses.GetByName(ctx, loc.LinkedWarehouse)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.Warnf("warehouse.ValidFor: location %q links missing warehouse %q", loc.Name, loc.LinkedWarehouse)
			return nil, nil
		}
		return nil, fmt.Errorf("warehouse.ValidFor: loading warehouse %q: %w", loc.LinkedWarehouse, err)
	}

	if !linked.IsGroup {
		if linked.Disabled {
			return nil, nil
		}
		return []domain.Warehouse{*linked}, nil
	}

	descendants, err := r.warehouses.Descendants(ctx, linked.Name)
	if err != nil {
		return nil, fmt.Errorf("warehouse.ValidFor: listing descendants of %q: %w", linked.Name, err)
	}
	var out []domain.Warehouse
	for i := range descendants {
		if descendants[i].Assignable() {
			out = append(out, descendants[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
