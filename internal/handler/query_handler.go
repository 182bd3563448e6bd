package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lbseries/internal/domain"
	"lbseries/internal/service"
)

// QueryHandler serves link picker searches.
type QueryHandler struct {
	queries service.QueryService
	errs    *ErrorHandler
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(queries service.QueryService, errs *ErrorHandler) *QueryHandler {
	return &QueryHandler{queries: queries, errs: errs}
}

func bindPicker(c *gin.Context) (service.PickerQuery, bool) {
	var q service.PickerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return q, false
	}
	if err := c.ShouldBindQuery(&q.Filters); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return q, false
	}
	return q, true
}

// Warehouses handles GET /api/v1/query/warehouses.
// @Summary Search warehouses valid for a location
// @Description Returns [name, warehouse_name] pairs ordered by name. A saved parent document overrides the location filters.
// @Tags query
// @Produce json
// @Param txt query string false "Substring of name or warehouse name"
// @Param start query int false "Offset"
// @Param page_len query int false "Page length (default 20)"
// @Param location query string false "Primary location"
// @Param shipping_location query string false "Shipping location"
// @Param dispatch_location query string false "Dispatch location"
// @Param parent_doctype query string false "Parent document type"
// @Param parent query string false "Parent document name"
// @Success 200 {object} Response{data=[][]string}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /query/warehouses [get]
func (h *QueryHandler) Warehouses(c *gin.Context) {
	q, ok := bindPicker(c)
	if !ok {
		return
	}
	opts, err := h.queries.WarehouseQuery(c.Request.Context(), q)
	if err != nil {
		h.errs.Handle(c, err)
		return
	}
	RespondOK(c, opts)
}

// Addresses handles GET /api/v1/query/addresses.
// @Summary Search addresses valid for a shipping or dispatch location
// @Tags query
// @Produce json
// @Param txt query string false "Substring of name or title"
// @Param location query string false "Primary location"
// @Param shipping_location query string false "Shipping location"
// @Param dispatch_location query string false "Dispatch location"
// @Success 200 {object} Response{data=[][]string}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /query/addresses [get]
func (h *QueryHandler) Addresses(c *gin.Context) {
	q, ok := bindPicker(c)
	if !ok {
		return
	}
	opts, err := h.queries.AddressQuery(c.Request.Context(), q)
	if err != nil {
		h.errs.Handle(c, err)
		return
	}
	RespondOK(c, opts)
}

// LocationWarehouses handles GET /api/v1/locations/:name/warehouses.
// @Summary List warehouses valid for a location
// @Tags query
// @Produce json
// @Param name path string true "Location name"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} Response{data=[]domain.Warehouse}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /locations/{name}/warehouses [get]
func (h *QueryHandler) LocationWarehouses(c *gin.Context) {
	ws, err := h.queries.ValidWarehouses(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.errs.Handle(c, err)
		return
	}
	offset, limit := parsePagination(c)
	RespondPaginated(c, pageOf(ws, offset, limit), PagMeta{Total: len(ws), Offset: offset, Limit: limit})
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}

func pageOf(ws []domain.Warehouse, offset, limit int) []domain.Warehouse {
	if offset >= len(ws) {
		return []domain.Warehouse{}
	}
	end := len(ws)
	if limit < end-offset {
		end = offset + limit
	}
	return ws[offset:end]
}
