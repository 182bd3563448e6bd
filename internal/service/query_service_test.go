package service_test

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
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
	"lbseries/mocks"
)

type queryFixture struct {
	svc        service.QueryService
	locations  *mocks.MockLocationRepo
	warehouses *mocks.MockWarehouseRepo
	addresses  *mocks.MockAddressRepo
	saved      *mocks.MockSavedDocumentRepo
}

func newQueryFixture() *queryFixture {
	f := &queryFixture{
		locations:  new(mocks.MockLocationRepo),
		warehouses: new(mocks.MockWarehouseRepo),
		addresses:  new(mocks.MockAddressRepo),
		saved:      new(mocks.MockSavedDocumentRepo),
	}
	log := logger.Discard()
	f.svc = service.NewQueryService(
		warehouse.NewResolver(f.locations, f.warehouses, log),
		location.NewValidator(new(mocks.MockDimensionRepo), f.locations, f.addresses, log),
		f.saved,
	)
	return f
}

func (f *queryFixture) withGroups() {
	f.locations.On("GetByName", mock.Anything, "Pune").Return(&domain.Location{Name: "Pune", LinkedAddress: "Pune Office", LinkedWarehouse: "Pune Group"}, nil)
	f.locations.On("GetByName", mock.Anything, "Nashik").Return(&domain.Location{Name: "Nashik", LinkedWarehouse: "Nashik Stores"}, nil)
	f.warehouses.On("GetByName", mock.Anything, "Pune Group").Return(&domain.Warehouse{Name: "Pune Group", IsGroup: true}, nil)
	f.warehouses.On("Descendants", mock.Anything, "Pune Group").Return([]domain.Warehouse{
		{Name: "Pune Main", WarehouseName: "Main"},
		{Name: "Pune Rejects", WarehouseName: "Rejects"},
	}, nil)
	f.warehouses.On("GetByName", mock.Anything, "Nashik Stores").Return(&domain.Warehouse{Name: "Nashik Stores", WarehouseName: "Stores"}, nil)
}

func TestQueryService_WarehouseQuery_FiltersByLocation(t *testing.T) {
	f := newQueryFixture()
	f.withGroups()

	opts, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{
		Txt:     "rej",
		Filters: service.PickerFilters{Location: "Pune"},
	})

	require.NoError(t, err)
	assert.Equal(t, []warehouse.Option{{Value: "Pune Rejects", Label: "Rejects"}}, opts)
}

func TestQueryService_WarehouseQuery_DispatchBeatsLocation(t *testing.T) {
	f := newQueryFixture()
	f.withGroups()

	opts, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{
		Filters: service.PickerFilters{Location: "Pune", DispatchLocation: "Nashik"},
	})

	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Nashik Stores", opts[0].Value)
}

func TestQueryService_WarehouseQuery_SavedParentWins(t *testing.T) {
	f := newQueryFixture()
	f.withGroups()
	f.saved.On("GetSaved", mock.Anything, domain.DocTypeDeliveryNote, "DN-1").Return(&domain.TransactionDocument{
		DocType:          domain.DocTypeDeliveryNote,
		Location:         "Pune",
		DispatchLocation: "Nashik",
	}, nil)

	opts, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{
		Filters: service.PickerFilters{Location: "Pune", ParentDocType: "Delivery Note", Parent: "DN-1"},
	})

	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "Nashik Stores", opts[0].Value)
}

func TestQueryService_WarehouseQuery_UnsavedParentUsesFilters(t *testing.T) {
	f := newQueryFixture()
	f.withGroups()
	f.saved.On("GetSaved", mock.Anything, domain.DocTypeSalesOrder, "new-sales-order-1").Return(nil, domain.ErrNotFound)

	opts, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{
		Filters: service.PickerFilters{Location: "Pune", ParentDocType: "Sales Order", Parent: "new-sales-order-1"},
	})

	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestQueryService_WarehouseQuery_ParentLookupError(t *testing.T) {
	f := newQueryFixture()
	f.saved.On("GetSaved", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{
		Filters: service.PickerFilters{ParentDocType: "Sales Order", Parent: "SO-1"},
	})

	assert.Error(t, err)
}

func TestQueryService_WarehouseQuery_NoLocation(t *testing.T) {
	f := newQueryFixture()

	opts, err := f.svc.WarehouseQuery(context.Background(), service.PickerQuery{})

	require.NoError(t, err)
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}

func TestQueryService_AddressQuery(t *testing.T) {
	f := newQueryFixture()
	f.withGroups()
	f.addresses.On("GetByName", mock.Anything, "Pune Office").Return(&domain.Address{Name: "Pune Office", AddressTitle: "Pune HQ"}, nil)

	opts, err := f.svc.AddressQuery(context.Background(), service.PickerQuery{
		Txt:     "hq",
		Filters: service.PickerFilters{ShippingLocation: "Pune"},
	})

	require.NoError(t, err)
	assert.Equal(t, []warehouse.Option{{Value: "Pune Office", Label: "Pune HQ"}}, opts)
}

func TestQueryService_ValidWarehouses_NeverNil(t *testing.T) {
	f := newQueryFixture()
	f.locations.On("GetByName", mock.Anything, "Ghost").Return(nil, domain.ErrNotFound)

	ws, err := f.svc.ValidWarehouses(context.Background(), "Ghost")

	require.NoError(t, err)
	assert.NotNil(t, ws)
	assert.Empty(t, ws)
}
