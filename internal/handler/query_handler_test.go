package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lbseries/internal/domain"
	"lbseries/internal/handler"
	"lbseries/internal/service"
	"lbseries/internal/warehouse"
	"lbseries/mocks"
)

func newQueryHandler() (*handler.QueryHandler, *mocks.MockQueryService) {
	mockSvc := new(mocks.MockQueryService)
	return handler.NewQueryHandler(mockSvc, newErrorHandler()), mockSvc
}

func TestQueryHandler_Warehouses_BindsFilters(t *testing.T) {
	h, mockSvc := newQueryHandler()

	expected := service.PickerQuery{
		DocType: "Warehouse",
		Txt:     "main",
		Start:   20,
		PageLen: 10,
		Filters: service.PickerFilters{
			Location:         "Pune",
			DispatchLocation: "Nashik",
			ParentDocType:    "Sales Invoice",
			Parent:           "SI-1",
		},
	}
	mockSvc.On("WarehouseQuery", mock.Anything, expected).Return([]warehouse.Option{{Value: "Nashik Main", Label: "Main"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/query/warehouses?doctype=Warehouse&txt=main&start=20&page_len=10&location=Pune&dispatch_location=Nashik&parent_doctype=Sales+Invoice&parent=SI-1",
		http.NoBody)

	h.Warehouses(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[["Nashik Main","Main"]]}`, w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestQueryHandler_Warehouses_InvalidPaging(t *testing.T) {
	h, _ := newQueryHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/query/warehouses?start=abc", http.NoBody)

	h.Warehouses(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueryHandler_Addresses_EmptyResult(t *testing.T) {
	h, mockSvc := newQueryHandler()
	mockSvc.On("AddressQuery", mock.Anything, mock.Anything).Return([]warehouse.Option{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/query/addresses", http.NoBody)

	h.Addresses(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestQueryHandler_LocationWarehouses(t *testing.T) {
	all := []domain.Warehouse{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	tests := []struct {
		name       string
		query      string
		wantNames  []string
		wantOffset int
		wantLimit  int
	}{
		{"defaults", "", []string{"A", "B", "C"}, 0, 20},
		{"second page", "?offset=1&limit=1", []string{"B"}, 1, 1},
		{"limit out of range", "?limit=1000", []string{"A", "B", "C"}, 0, 20},
		{"offset past end", "?offset=5", []string{}, 5, 20},
		{"negative offset", "?offset=-2&limit=2", []string{"A", "B"}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockSvc := newQueryHandler()
			mockSvc.On("ValidWarehouses", mock.Anything, "Pune").Return(all, nil)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/locations/Pune/warehouses"+tt.query, http.NoBody)
			c.Params = gin.Params{{Key: "name", Value: "Pune"}}

			h.LocationWarehouses(c)

			assert.Equal(t, http.StatusOK, w.Code)
			resp := decode(t, w)
			assert.True(t, resp.Success)
			require.NotNil(t, resp.Meta)
			assert.Equal(t, 3, resp.Meta.Total)
			assert.Equal(t, tt.wantOffset, resp.Meta.Offset)
			assert.Equal(t, tt.wantLimit, resp.Meta.Limit)

			names := []string{}
			for _, item := range resp.Data.([]interface{}) {
				names = append(names, item.(map[string]interface{})["name"].(string))
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestQueryHandler_ServiceError(t *testing.T) {
	h, mockSvc := newQueryHandler()
	mockSvc.On("ValidWarehouses", mock.Anything, "Pune").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/locations/Pune/warehouses", http.NoBody)
	c.Params = gin.Params{{Key: "name", Value: "Pune"}}

	h.LocationWarehouses(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
}
