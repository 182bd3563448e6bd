package naming

import (
	"fmt"

	"lbseries/internal/domain"
)

// DefaultTemplates is the naming series installed for each transaction type.
func DefaultTemplates() map[domain.DocType]string {
	return map[domain.DocType]string{
		domain.DocTypeSalesInvoice:    "SI.{doctype_code}.{location_code}.FY.-.####",
		domain.DocTypePurchaseInvoice: "PI.{doctype_code}.{location_code}.FY.-.####",
		domain.DocTypeSalesOrder:      "SO.{location_code}.FY.-.####",
		domain.DocTypePurchaseOrder:   "PO.{location_code}.FY.-.####",
		domain.DocTypeDeliveryNote:    "DN.{doctype_code}.{location_code}.FY.-.####",
		domain.DocTypePurchaseReceipt: "PR.{doctype_code}.{location_code}.FY.-.####",
	}
}

// Registry maps document types to parsed naming templates.
type Registry struct {
	templates map[domain.DocType]*Template
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[domain.DocType]*Template)}
}

// NewDefaultRegistry parses the default templates with overrides applied on
// top. Override keys are document type names.
func NewDefaultRegistry(overrides map[string]string) (*Registry, error) {
	r := NewRegistry()
	src := DefaultTemplates()
	for dt, text := range overrides {
		src[domain.DocType(dt)] = text
	}
	for dt, text := range src {
		t, err := ParseTemplate(text)
		if err != nil {
			return nil, fmt.Errorf("naming template for %s: %w", dt, err)
		}
		r.Register(dt, t)
	}
	return r, nil
}

// Register adds or replaces the template of a document type.
func (r *Registry) Register(dt domain.DocType, t *Template) {
	r.templates[dt] = t
}

// Get returns the template for a document type.
func (r *Registry) Get(dt domain.DocType) (*Template, bool) {
	t, ok := r.templates[dt]
	return t, ok
}
