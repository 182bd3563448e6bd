package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lbseries/internal/domain"
	"lbseries/internal/service"
)

// HookRequest is the body the host framework posts from its lifecycle hooks.
type HookRequest struct {
	Doc      *domain.TransactionDocument `json:"doc" binding:"required"`
	Previous *domain.TransactionDocument `json:"previous,omitempty"`
	Today    string                      `json:"today,omitempty" example:"2025-04-01"`
}

func (r *HookRequest) options() (service.Options, error) {
	var opts service.Options
	if r.Today == "" {
		return opts, nil
	}
	t, err := time.Parse("2006-01-02", r.Today)
	if err != nil {
		return opts, err
	}
	opts.Today = t
	return opts, nil
}

// HookHandler serves the document lifecycle hooks.
type HookHandler struct {
	lifecycle service.LifecycleService
	errs      *ErrorHandler
}

// NewHookHandler creates a new HookHandler.
func NewHookHandler(lifecycle service.LifecycleService, errs *ErrorHandler) *HookHandler {
	return &HookHandler{lifecycle: lifecycle, errs: errs}
}

func (h *HookHandler) bind(c *gin.Context) (*HookRequest, service.Options, bool) {
	var req HookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return nil, service.Options{}, false
	}
	opts, err := req.options()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "today must be YYYY-MM-DD")
		return nil, service.Options{}, false
	}
	return &req, opts, true
}

// Autoname handles POST /api/v1/hooks/autoname.
// @Summary Assign a series name
// @Description Derives the doctype code, location code and fiscal code and allocates the next name in the series
// @Tags hooks
// @Accept json
// @Produce json
// @Param request body HookRequest true "Document being named"
// @Success 200 {object} Response{data=service.NameResult} "Assigned name"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Invalid document data"
// @Failure 500 {object} ErrorResponseBody "No naming template for document type"
// @Security BearerAuth
// @Router /hooks/autoname [post]
func (h *HookHandler) Autoname(c *gin.Context) {
	req, opts, ok := h.bind(c)
	if !ok {
		return
	}
	result, err := h.lifecycle.Autoname(c.Request.Context(), req.Doc, opts)
	if err != nil {
		h.errs.Handle(c, err)
		return
	}
	RespondOK(c, result)
}

// Validate handles POST /api/v1/hooks/validate.
// @Summary Apply location rules
// @Description Validates the location, fills address and warehouse fields, derives place of supply and enforces field locks
// @Tags hooks
// @Accept json
// @Produce json
// @Param request body HookRequest true "Document being saved"
// @Success 200 {object} Response{data=domain.TransactionDocument} "Updated document"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Saved version not found"
// @Failure 422 {object} ErrorResponseBody "Rule violation"
// @Security BearerAuth
// @Router /hooks/validate [post]
func (h *HookHandler) Validate(c *gin.Context) {
	req, opts, ok := h.bind(c)
	if !ok {
		return
	}
	doc, err := h.lifecycle.Validate(c.Request.Context(), req.Doc, req.Previous, opts)
	if err != nil {
		h.errs.Handle(c, err)
		return
	}
	RespondOK(c, doc)
}

// Saved handles POST /api/v1/hooks/saved.
// @Summary Record a saved version
// @Description Stores the document as persisted so later saves are checked against it
// @Tags hooks
// @Accept json
// @Produce json
// @Param request body HookRequest true "Document after save or submit"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /hooks/saved [post]
func (h *HookHandler) Saved(c *gin.Context) {
	req, _, ok := h.bind(c)
	if !ok {
		return
	}
	if err := h.lifecycle.Record(c.Request.Context(), req.Doc); err != nil {
		h.errs.Handle(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "saved version recorded"})
}
