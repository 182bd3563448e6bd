package location

import (
	"strconv"

	"lbseries/internal/domain"
)

// CheckLocks rejects changes to fields that are frozen once a document has
// been saved. Secondary location fields freeze only after submission.
func CheckLocks(doc, prev *domain.TransactionDocument, schema *domain.Schema) error {
	if doc.IsNew || prev == nil {
		return nil
	}

	locked := []string{domain.FieldLocation, schema.AddressField()}
	if prev.DocStatus == domain.DocStatusSubmitted && schema.Secondary != "" {
		locked = append(locked, string(schema.Secondary), schema.SecondaryAddressField())
	}
	for _, f := range locked {
		if !schema.Has(f) {
			continue
		}
		if doc.Get(f) != prev.Get(f) {
			return &domain.FieldError{Err: domain.ErrFieldLocked, Field: f, Value: doc.Get(f)}
		}
	}

	for _, f := range []string{domain.FieldIsReturn, domain.FieldIsRateAdjustment} {
		if !schema.Has(f) {
			continue
		}
		if doc.Flag(f) != prev.Flag(f) {
			return &domain.FieldError{Err: domain.ErrFieldLocked, Field: f, Value: strconv.FormatBool(doc.Flag(f))}
		}
	}
	return nil
}
