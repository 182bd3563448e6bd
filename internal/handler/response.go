package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lbseries/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details *FieldDetails `json:"details,omitempty"`
}

// FieldDetails pinpoints the field a validation error is about.
type FieldDetails struct {
	Field    string   `json:"field"`
	Table    string   `json:"table,omitempty"`
	Row      int      `json:"row,omitempty"`
	Value    string   `json:"value,omitempty"`
	Location string   `json:"location,omitempty"`
	Allowed  []string `json:"allowed,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Configuration and validation messages are passed through so the host can
// show them to the user verbatim.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrDimensionDisabled):
		return http.StatusUnprocessableEntity, "CONFIGURATION_ERROR", err.Error()
	case domain.IsConfigurationError(err):
		return http.StatusInternalServerError, "CONFIGURATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrUnsupportedDocType):
		return http.StatusBadRequest, "UNSUPPORTED_DOCTYPE", err.Error()
	case errors.Is(err, domain.ErrInvalidReportFormat):
		return http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx"
	case isFieldError(err):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "script asset upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

func isFieldError(err error) bool {
	var fe *domain.FieldError
	return errors.As(err, &fe)
}

// ErrorHandler turns service errors into responses and logs server faults.
type ErrorHandler struct {
	log logrus.FieldLogger
}

// NewErrorHandler creates an ErrorHandler.
func NewErrorHandler(log logrus.FieldLogger) *ErrorHandler {
	return &ErrorHandler{log: log.WithField("component", "handler")}
}

// Handle maps a domain error and sends the appropriate error response.
func (h *ErrorHandler) Handle(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	requestID, _ := c.Get("request_id")
	if status >= 500 {
		h.log.WithField("request_id", requestID).Errorf("internal error: %v", err)
	}

	apiErr := &APIError{Code: code, Message: msg}
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		apiErr.Details = &FieldDetails{
			Field:    fe.Field,
			Table:    fe.Table,
			Row:      fe.Row,
			Value:    fe.Value,
			Location: fe.Location,
			Allowed:  fe.Allowed,
		}
	}
	c.JSON(status, APIResponse{Success: false, Error: apiErr})
}
