package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
	"lbseries/internal/gst"
	"lbseries/internal/location"
	"lbseries/internal/naming"
	"lbseries/internal/port"
	"lbseries/internal/warehouse"
)

// Options carries per-call settings that the host framework would otherwise
// keep in global state.
type Options struct {
	// Today stands in for an empty posting date. Zero means time.Now().
	Today time.Time
}

func (o Options) today() time.Time {
	if o.Today.IsZero() {
		return time.Now()
	}
	return o.Today
}

// NameResult is the outcome of Autoname.
type NameResult struct {
	Name        string                      `json:"name"`
	DoctypeCode string                      `json:"doctype_code"`
	FiscalCode  string                      `json:"fiscal_code"`
	Doc         *domain.TransactionDocument `json:"doc"`
}

// LifecycleService runs the rules bound to the host's document lifecycle.
// Both operations work on a copy of the input; the copy is returned only when
// every rule passed.
type LifecycleService interface {
	Autoname(ctx context.Context, doc *domain.TransactionDocument, opts Options) (*NameResult, error)
	// Validate applies location rules. prev is the last saved version; when
	// nil and doc is not new it is loaded from the snapshot store.
	Validate(ctx context.Context, doc, prev *domain.TransactionDocument, opts Options) (*domain.TransactionDocument, error)
	// Record stores doc as the saved version later validations lock against.
	Record(ctx context.Context, doc *domain.TransactionDocument) error
}

type lifecycleService struct {
	namer      *naming.Resolver
	validator  *location.Validator
	warehouses *warehouse.Resolver
	deriver    *gst.Deriver
	locations  port.LocationRepository
	saved      port.SavedDocumentRepository
	log        logrus.FieldLogger
}

// NewLifecycleService creates a new LifecycleService implementation.
func NewLifecycleService(
	namer *naming.Resolver,
	validator *location.Validator,
	warehouses *warehouse.Resolver,
	deriver *gst.Deriver,
	locations port.LocationRepository,
	saved port.SavedDocumentRepository,
	log logrus.FieldLogger,
) LifecycleService {
	return &lifecycleService{
		namer:      namer,
		validator:  validator,
		warehouses: warehouses,
		deriver:    deriver,
		locations:  locations,
		saved:      saved,
		log:        log.WithField("component", "lifecycle"),
	}
}

func (s *lifecycleService) Autoname(ctx context.Context, doc *domain.TransactionDocument, opts Options) (*NameResult, error) {
	work := doc.Clone()

	// Naming can run before validate has copied the code over.
	if work.LocationCode == "" && work.Location != "" {
		loc, err := s.locations.GetByName(ctx, work.Location)
		switch {
		case err == nil:
			work.LocationCode = loc.Code
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("lifecycle.Autoname: loading location: %w", err)
		}
	}

	res, err := s.namer.Resolve(ctx, work, opts.today())
	if err != nil {
		return nil, err
	}
	return &NameResult{
		Name:        res.Name,
		DoctypeCode: res.DoctypeCode,
		FiscalCode:  res.FiscalCode,
		Doc:         work,
	}, nil
}

func (s *lifecycleService) Validate(ctx context.Context, doc, prev *domain.TransactionDocument, opts Options) (*domain.TransactionDocument, error) {
	schema, ok := domain.SchemaFor(doc.DocType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedDocType, doc.DocType)
	}
	work := doc.Clone()

	if err := s.validator.CheckDimension(ctx); err != nil {
		return nil, err
	}

	primary, err := s.validator.ApplyPrimary(ctx, work, schema)
	if err != nil {
		return nil, err
	}
	if _, err := s.validator.ApplySecondary(ctx, work, schema); err != nil {
		return nil, err
	}

	role := location.ActiveRole(work, schema)
	active := work.LocationFor(role)
	var valid []domain.Warehouse
	if role == domain.RolePrimary {
		valid, err = s.warehouses.ValidFor(ctx, primary.Location)
	} else {
		valid, err = s.warehouses.ValidForLocation(ctx, active)
	}
	if err != nil {
		return nil, err
	}
	set := warehouse.Names(valid)
	for _, c := range warehouse.AutoFill(work, schema, set) {
		s.log.Debugf("lifecycle.Validate: %s filled %s%s with %s", work.DocType, tablePrefix(c), c.Field, c.Value)
	}
	if err := warehouse.ValidateFields(work, schema, set, active); err != nil {
		return nil, err
	}

	if schema.Purchase {
		if code := s.deriver.Derive(primary.Address); code != "" {
			work.PlaceOfSupply = code
		}
	}

	if !work.IsNew {
		if prev == nil {
			prev, err = s.saved.GetSaved(ctx, work.DocType, work.Name)
			if err != nil {
				return nil, fmt.Errorf("lifecycle.Validate: loading saved %s %q: %w", work.DocType, work.Name, err)
			}
		}
		if err := location.CheckLocks(work, prev, schema); err != nil {
			return nil, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"doctype":  work.DocType,
		"name":     work.Name,
		"location": work.Location,
		"role":     role,
	}).Info("lifecycle.Validate: document passed location rules")
	return work, nil
}

func (s *lifecycleService) Record(ctx context.Context, doc *domain.TransactionDocument) error {
	if _, ok := domain.SchemaFor(doc.DocType); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedDocType, doc.DocType)
	}
	if doc.Name == "" {
		return &domain.FieldError{Err: domain.ErrNameRequired, Field: "name"}
	}
	snapshot := doc.Clone()
	snapshot.IsNew = false
	if err := s.saved.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("lifecycle.Record: %w", err)
	}
	s.log.Debugf("lifecycle.Record: stored %s %q (docstatus %d)", doc.DocType, doc.Name, doc.DocStatus)
	return nil
}

func tablePrefix(c warehouse.Change) string {
	if c.Table == "" {
		return ""
	}
	return fmt.Sprintf("%s[%d].", c.Table, c.Row)
}
