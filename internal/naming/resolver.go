package naming

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
	"lbseries/internal/port"
)

// DefaultLocationCode is used when a document reaches naming without a
// location code.
const DefaultLocationCode = "0000"

// FiscalCoder resolves the short fiscal code for a date and company.
type FiscalCoder interface {
	Code(ctx context.Context, date time.Time, company string) string
}

// Result is the outcome of a naming call.
type Result struct {
	Name        string `json:"name"`
	Prefix      string `json:"prefix"`
	Counter     int64  `json:"counter"`
	DoctypeCode string `json:"doctype_code"`
	FiscalCode  string `json:"fiscal_code"`
}

// Resolver assigns series names to transaction documents.
type Resolver struct {
	registry         *Registry
	fiscal           FiscalCoder
	series           port.SeriesRepository
	locationFallback string
	log              logrus.FieldLogger
}

// NewResolver creates a Resolver. An empty locationFallback selects
// DefaultLocationCode.
func NewResolver(registry *Registry, fiscal FiscalCoder, series port.SeriesRepository, locationFallback string, log logrus.FieldLogger) *Resolver {
	if locationFallback == "" {
		locationFallback = DefaultLocationCode
	}
	return &Resolver{
		registry:         registry,
		fiscal:           fiscal,
		series:           series,
		locationFallback: locationFallback,
		log:              log.WithField("component", "naming"),
	}
}

// Resolve writes the doctype code onto doc and allocates its name. On error
// doc.Name is left untouched.
func (r *Resolver) Resolve(ctx context.Context, doc *domain.TransactionDocument, today time.Time) (*Result, error) {
	code := DoctypeCode(doc)
	doc.DoctypeCode = code

	tmpl, ok := r.registry.Get(doc.DocType)
	if !ok {
		r.log.Errorf("naming.Resolve: no template for %q", doc.DocType)
		return nil, fmt.Errorf("%w: %s", domain.ErrNamingTemplateMissing, doc.DocType)
	}

	postingDate, err := doc.ParsePostingDate(today)
	if err != nil {
		return nil, err
	}

	locationCode := doc.LocationCode
	if locationCode == "" {
		locationCode = r.locationFallback
	}

	var fiscalCode string
	if tmpl.Uses(SegmentFiscalCode) {
		fiscalCode = r.fiscal.Code(ctx, postingDate, doc.Company)
	}

	prefix := tmpl.Prefix(Values{
		DoctypeCode:  code,
		LocationCode: locationCode,
		FiscalCode:   fiscalCode,
	})

	counter, err := r.series.Next(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("naming.Resolve: allocating counter for %q: %w", prefix, err)
	}

	name := tmpl.Format(prefix, counter)
	doc.Name = name

	r.log.WithFields(logrus.Fields{
		"doctype":       doc.DocType,
		"posting_date":  postingDate.Format("2006-01-02"),
		"company":       doc.Company,
		"location_code": locationCode,
		"doctype_code":  code,
		"fiscal_code":   fiscalCode,
	}).Infof("naming.Resolve: assigned %s", name)

	return &Result{
		Name:        name,
		Prefix:      prefix,
		Counter:     counter,
		DoctypeCode: code,
		FiscalCode:  fiscalCode,
	}, nil
}
