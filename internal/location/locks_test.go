package location_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lbseries/internal/domain"
	"lbseries/internal/location"
)

func saved(dt domain.DocType) *domain.TransactionDocument {
	return &domain.TransactionDocument{
		DocType:             dt,
		Name:                "SI-0001",
		Location:            "Pune",
		CompanyAddress:      "Pune Office",
		BillingAddress:      "Pune Office",
		DispatchLocation:    "Pune",
		DispatchAddressName: "Pune Office",
	}
}

func TestCheckLocks_LocationChanged(t *testing.T) {
	prev := saved(domain.DocTypeSalesInvoice)
	doc := prev.Clone()
	doc.Location = "Mumbai"

	err := location.CheckLocks(doc, prev, schema(t, domain.DocTypeSalesInvoice))

	assert.ErrorIs(t, err, domain.ErrFieldLocked)
	assert.Contains(t, err.Error(), "location")
	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, domain.FieldLocation, fe.Field)
	assert.Equal(t, "Mumbai", fe.Value)
}

func TestCheckLocks_AddressChanged(t *testing.T) {
	prev := saved(domain.DocTypePurchaseInvoice)
	doc := prev.Clone()
	doc.BillingAddress = "Elsewhere"

	err := location.CheckLocks(doc, prev, schema(t, domain.DocTypePurchaseInvoice))

	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, domain.FieldBillingAddress, fe.Field)
}

func TestCheckLocks_SecondaryFrozenAfterSubmit(t *testing.T) {
	s := schema(t, domain.DocTypeSalesInvoice)

	draft := saved(domain.DocTypeSalesInvoice)
	doc := draft.Clone()
	doc.DispatchLocation = "Mumbai"
	assert.NoError(t, location.CheckLocks(doc, draft, s))

	submitted := saved(domain.DocTypeSalesInvoice)
	submitted.DocStatus = domain.DocStatusSubmitted
	err := location.CheckLocks(doc, submitted, s)

	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, domain.FieldDispatchLocation, fe.Field)
}

func TestCheckLocks_FlagsFrozen(t *testing.T) {
	prev := saved(domain.DocTypeSalesInvoice)
	doc := prev.Clone()
	doc.IsReturn = true

	err := location.CheckLocks(doc, prev, schema(t, domain.DocTypeSalesInvoice))

	var fe *domain.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, domain.FieldIsReturn, fe.Field)
	assert.Equal(t, "true", fe.Value)
}

func TestCheckLocks_FlagNotOnSchema(t *testing.T) {
	// Sales Order carries no is_return field.
	prev := saved(domain.DocTypeSalesOrder)
	doc := prev.Clone()
	doc.IsReturn = true

	assert.NoError(t, location.CheckLocks(doc, prev, schema(t, domain.DocTypeSalesOrder)))
}

func TestCheckLocks_NewDocumentSkipped(t *testing.T) {
	prev := saved(domain.DocTypeSalesInvoice)
	doc := prev.Clone()
	doc.IsNew = true
	doc.Location = "Mumbai"

	assert.NoError(t, location.CheckLocks(doc, prev, schema(t, domain.DocTypeSalesInvoice)))
	assert.NoError(t, location.CheckLocks(doc, nil, schema(t, domain.DocTypeSalesInvoice)))
}

func TestCheckLocks_Unchanged(t *testing.T) {
	prev := saved(domain.DocTypeDeliveryNote)
	prev.DocStatus = domain.DocStatusSubmitted
	doc := prev.Clone()
	doc.SetWarehouse = "Anything"

	assert.NoError(t, location.CheckLocks(doc, prev, schema(t, domain.DocTypeDeliveryNote)))
}
