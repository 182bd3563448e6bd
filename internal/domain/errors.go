package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnsupportedDocType  = errors.New("document type is not handled by location rules")
	ErrInvalidPostingDate  = errors.New("posting date is not a valid date")
	ErrUploadFailed        = errors.New("script asset upload to storage failed")
	ErrInvalidReportFormat = errors.New("unsupported report format")
	ErrNameRequired        = errors.New("document name is required")

	// Configuration errors.
	ErrDimensionDisabled     = errors.New("please enable 'Location' as an active Accounting Dimension before using it in transactions")
	ErrNamingTemplateMissing = errors.New("no naming template registered for document type")
	ErrInvalidTemplate       = errors.New("invalid naming template")

	// Data validation errors.
	ErrLocationRequired         = errors.New("select Location before saving")
	ErrLocationCodeMissing      = errors.New("selected Location must have a Location Code")
	ErrLocationAddressMissing   = errors.New("selected Location must have a Linked Address")
	ErrLocationWarehouseMissing = errors.New("selected Location must have a Linked Warehouse")
	ErrWarehouseNotAllowed      = errors.New("warehouse is not valid for location")
	ErrAddressNotAllowed        = errors.New("address is not valid for location")
	ErrFieldLocked              = errors.New("field cannot be changed after saving")
)

// FieldError ties a validation failure to the field, row and value that
// caused it. Unwrap yields the sentinel.
type FieldError struct {
	Err      error
	Field    string
	Table    string
	Row      int
	Value    string
	Location string
	Allowed  []string
}

func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	b.WriteString(": field '")
	if e.Table != "" {
		fmt.Fprintf(&b, "%s[%d].", e.Table, e.Row)
	}
	b.WriteString(e.Field)
	b.WriteString("'")
	if e.Value != "" {
		fmt.Fprintf(&b, " value '%s'", e.Value)
	}
	if e.Location != "" {
		fmt.Fprintf(&b, " for location '%s'", e.Location)
	}
	if e.Allowed != nil {
		fmt.Fprintf(&b, "; valid values are: %s", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err stems from a setup defect rather
// than from document data.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrDimensionDisabled) ||
		errors.Is(err, ErrNamingTemplateMissing) ||
		errors.Is(err, ErrInvalidTemplate)
}
