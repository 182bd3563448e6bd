package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lbseries/internal/domain"
	"lbseries/internal/gst"
	"lbseries/internal/logger"
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
	"lbseries/mocks"
)

func TestReportService_LocationCoverage(t *testing.T) {
	locations := new(mocks.MockLocationRepo)
	warehouses := new(mocks.MockWarehouseRepo)
	addresses := new(mocks.MockAddressRepo)
	svc := service.NewReportService(locations, warehouses, addresses,
		warehouse.NewResolver(locations, warehouses, logger.Discard()), gst.NewDeriver(""))

	pune := domain.Location{Name: "Pune", LocationName: "Pune Plant", Code: "PUN1", LinkedAddress: "Pune Office", LinkedWarehouse: "Pune Group"}
	locations.On("List", mock.Anything).Return([]domain.Location{
		pune,
		{Name: "Draft"},
		{Name: "Dangling", Code: "DG01", LinkedAddress: "Gone", LinkedWarehouse: "Gone WH"},
	}, nil)
	addresses.On("GetByName", mock.Anything, "Pune Office").Return(&domain.Address{Name: "Pune Office", GSTStateNumber: "27"}, nil)
	addresses.On("GetByName", mock.Anything, "Gone").Return(nil, domain.ErrNotFound)
	warehouses.On("GetByName", mock.Anything, "Pune Group").Return(&domain.Warehouse{Name: "Pune Group", IsGroup: true}, nil)
	warehouses.On("Descendants", mock.Anything, "Pune Group").Return([]domain.Warehouse{{Name: "Pune B"}, {Name: "Pune A"}}, nil)
	warehouses.On("GetByName", mock.Anything, "Gone WH").Return(nil, domain.ErrNotFound)

	rows, err := svc.LocationCoverage(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Pune", rows[0].Location)
	assert.True(t, rows[0].WarehouseGroup)
	assert.Equal(t, []string{"Pune A", "Pune B"}, rows[0].ValidWarehouses)
	assert.Equal(t, "27-Maharashtra", rows[0].PlaceOfSupply)
	assert.Empty(t, rows[0].Problems)

	assert.Equal(t, []string{"missing location code", "missing linked address", "missing linked warehouse"}, rows[1].Problems)
	assert.Equal(t, []string{"linked address does not exist", "linked warehouse does not exist"}, rows[2].Problems)
}

func TestReportService_LocationCoverage_NoAssignableWarehouse(t *testing.T) {
	locations := new(mocks.MockLocationRepo)
	warehouses := new(mocks.MockWarehouseRepo)
	addresses := new(mocks.MockAddressRepo)
	svc := service.NewReportService(locations, warehouses, addresses,
		warehouse.NewResolver(locations, warehouses, logger.Discard()), gst.NewDeriver(""))

	locations.On("List", mock.Anything).Return([]domain.Location{
		{Name: "Idle", Code: "ID01", LinkedAddress: "A", LinkedWarehouse: "Closed"},
	}, nil)
	addresses.On("GetByName", mock.Anything, "A").Return(&domain.Address{Name: "A"}, nil)
	warehouses.On("GetByName", mock.Anything, "Closed").Return(&domain.Warehouse{Name: "Closed", Disabled: true}, nil)

	rows, err := svc.LocationCoverage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"no assignable warehouse"}, rows[0].Problems)
}

func TestReportService_LocationCoverage_ListError(t *testing.T) {
	locations := new(mocks.MockLocationRepo)
	svc := service.NewReportService(locations, new(mocks.MockWarehouseRepo), new(mocks.MockAddressRepo), nil, gst.NewDeriver(""))
	locations.On("List", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.LocationCoverage(context.Background())

	assert.Error(t, err)
}
