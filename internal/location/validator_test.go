package location_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lbseries/internal/domain"
	"lbseries/internal/location"
	"lbseries/internal/logger"
	"lbseries/mocks"
)

type fixture struct {
	v          *location.Validator
	dimensions *mocks.MockDimensionRepo
	locations  *mocks.MockLocationRepo
	addresses  *mocks.MockAddressRepo
}

func newFixture() *fixture {
	f := &fixture{
		dimensions: new(mocks.MockDimensionRepo),
		locations:  new(mocks.MockLocationRepo),
		addresses:  new(mocks.MockAddressRepo),
	}
	f.v = location.NewValidator(f.dimensions, f.locations, f.addresses, logger.Discard())
	return f
}

func schema(t *testing.T, dt domain.DocType) *domain.Schema {
	t.Helper()
	s, ok := domain.SchemaFor(dt)
	require.True(t, ok)
	return s
}

var pune = &domain.Location{
	Name:            "Pune",
	Code:            "PUN1",
	LinkedAddress:   "Pune Office",
	LinkedWarehouse: "Pune Stores",
}

var puneOffice = &domain.Address{
	Name:         "Pune Office",
	AddressLine1: "12 FC Road",
	City:         "Pune",
	State:        "Maharashtra",
	Country:      "India",
	GSTIN:        "27AABCU9603R1ZM",
}

func TestCheckDimension(t *testing.T) {
	f := newFixture()
	f.dimensions.On("IsEnabled", mock.Anything, "Location").Return(false, nil).Once()
	f.dimensions.On("IsEnabled", mock.Anything, "Location").Return(true, nil).Once()

	err := f.v.CheckDimension(context.Background())
	assert.ErrorIs(t, err, domain.ErrDimensionDisabled)
	assert.True(t, domain.IsConfigurationError(err))

	assert.NoError(t, f.v.CheckDimension(context.Background()))
}

func TestApplyPrimary_SalesCopiesCompanyAddress(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)
	f.addresses.On("GetByName", mock.Anything, "Pune Office").Return(puneOffice, nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesInvoice, Location: "Pune"}
	p, err := f.v.ApplyPrimary(context.Background(), doc, schema(t, domain.DocTypeSalesInvoice))

	require.NoError(t, err)
	assert.Equal(t, pune, p.Location)
	assert.Equal(t, "PUN1", doc.LocationCode)
	assert.Equal(t, "Pune Office", doc.CompanyAddress)
	assert.Equal(t, "12 FC Road<br>Pune<br>Maharashtra<br>India<br>GSTIN: 27AABCU9603R1ZM", doc.CompanyAddressDisplay)
	assert.Equal(t, "27AABCU9603R1ZM", doc.CompanyGSTIN)
	assert.Empty(t, doc.BillingAddress)
}

func TestApplyPrimary_PurchaseCopiesBillingAddress(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)
	f.addresses.On("GetByName", mock.Anything, "Pune Office").Return(puneOffice, nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypePurchaseInvoice, Location: "Pune"}
	_, err := f.v.ApplyPrimary(context.Background(), doc, schema(t, domain.DocTypePurchaseInvoice))

	require.NoError(t, err)
	assert.Equal(t, "Pune Office", doc.BillingAddress)
	assert.NotEmpty(t, doc.BillingAddressDisplay)
	assert.Empty(t, doc.CompanyAddress)
}

func TestApplyPrimary_DanglingAddressStillCopied(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)
	f.addresses.On("GetByName", mock.Anything, "Pune Office").Return(nil, domain.ErrNotFound)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesOrder, Location: "Pune"}
	p, err := f.v.ApplyPrimary(context.Background(), doc, schema(t, domain.DocTypeSalesOrder))

	require.NoError(t, err)
	assert.Nil(t, p.Address)
	assert.Equal(t, "Pune Office", doc.CompanyAddress)
	assert.Empty(t, doc.CompanyAddressDisplay)
}

func TestApplyPrimary_Errors(t *testing.T) {
	noCode := &domain.Location{Name: "NoCode", LinkedAddress: "X"}
	noAddr := &domain.Location{Name: "NoAddr", Code: "NA01"}

	tests := []struct {
		name     string
		location string
		want     error
	}{
		{"location required", "", domain.ErrLocationRequired},
		{"unknown location", "Ghost", domain.ErrNotFound},
		{"missing code", "NoCode", domain.ErrLocationCodeMissing},
		{"missing address", "NoAddr", domain.ErrLocationAddressMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.locations.On("GetByName", mock.Anything, "Ghost").Return(nil, domain.ErrNotFound).Maybe()
			f.locations.On("GetByName", mock.Anything, "NoCode").Return(noCode, nil).Maybe()
			f.locations.On("GetByName", mock.Anything, "NoAddr").Return(noAddr, nil).Maybe()

			doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesInvoice, Location: tt.location}
			_, err := f.v.ApplyPrimary(context.Background(), doc, schema(t, domain.DocTypeSalesInvoice))

			assert.ErrorIs(t, err, tt.want)
			var fe *domain.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, domain.FieldLocation, fe.Field)
			assert.Empty(t, doc.LocationCode)
		})
	}
}

func TestApplySecondary_FillsEmptyAddress(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeDeliveryNote, DispatchLocation: "Pune"}
	loc, err := f.v.ApplySecondary(context.Background(), doc, schema(t, domain.DocTypeDeliveryNote))

	require.NoError(t, err)
	assert.Equal(t, "Pune", loc.Name)
	assert.Equal(t, "Pune Office", doc.DispatchAddressName)
}

func TestApplySecondary_RejectsForeignAddress(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypePurchaseOrder, ShippingLocation: "Pune", ShippingAddress: "Mumbai Office"}
	_, err := f.v.ApplySecondary(context.Background(), doc, schema(t, domain.DocTypePurchaseOrder))

	assert.ErrorIs(t, err, domain.ErrAddressNotAllowed)
	assert.Contains(t, err.Error(), "shipping_address")
	assert.Contains(t, err.Error(), "Pune Office")
}

func TestApplySecondary_RequiresLinkedWarehouse(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Bare").Return(&domain.Location{Name: "Bare", LinkedAddress: "A"}, nil)

	doc := &domain.TransactionDocument{DocType: domain.DocTypeSalesOrder, DispatchLocation: "Bare"}
	_, err := f.v.ApplySecondary(context.Background(), doc, schema(t, domain.DocTypeSalesOrder))

	assert.ErrorIs(t, err, domain.ErrLocationWarehouseMissing)
}

func TestApplySecondary_NotApplicable(t *testing.T) {
	f := newFixture()

	loc, err := f.v.ApplySecondary(context.Background(), &domain.TransactionDocument{DocType: domain.DocTypeStockEntry}, schema(t, domain.DocTypeStockEntry))
	assert.NoError(t, err)
	assert.Nil(t, loc)

	loc, err = f.v.ApplySecondary(context.Background(), &domain.TransactionDocument{DocType: domain.DocTypeSalesInvoice}, schema(t, domain.DocTypeSalesInvoice))
	assert.NoError(t, err)
	assert.Nil(t, loc)
	f.locations.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestActiveRole(t *testing.T) {
	si := schema(t, domain.DocTypeSalesInvoice)
	pi := schema(t, domain.DocTypePurchaseInvoice)

	assert.Equal(t, domain.RolePrimary, location.ActiveRole(&domain.TransactionDocument{Location: "L"}, si))
	assert.Equal(t, domain.RoleDispatch, location.ActiveRole(&domain.TransactionDocument{Location: "L", DispatchLocation: "D"}, si))
	assert.Equal(t, domain.RoleShipping, location.ActiveRole(&domain.TransactionDocument{Location: "L", ShippingLocation: "S"}, pi))
	// A field the schema does not carry is ignored.
	assert.Equal(t, domain.RolePrimary, location.ActiveRole(&domain.TransactionDocument{Location: "L", ShippingLocation: "S"}, si))
}

func TestValidAddresses(t *testing.T) {
	f := newFixture()
	f.locations.On("GetByName", mock.Anything, "Pune").Return(pune, nil)
	f.locations.On("GetByName", mock.Anything, "Ghost").Return(nil, domain.ErrNotFound)
	f.addresses.On("GetByName", mock.Anything, "Pune Office").Return(puneOffice, nil)

	addrs, err := f.v.ValidAddresses(context.Background(), "Pune")
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "Pune Office", addrs[0].Name)

	addrs, err = f.v.ValidAddresses(context.Background(), "Ghost")
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestDisplay_SkipsEmptyParts(t *testing.T) {
	assert.Equal(t, "Line 1<br>Goa", location.Display(&domain.Address{AddressLine1: " Line 1 ", State: "Goa"}))
	assert.Empty(t, location.Display(nil))
}
