package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"lbseries/internal/domain"
	"lbseries/internal/report"
	"lbseries/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reports service.ReportService
	errs    *ErrorHandler
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports service.ReportService, errs *ErrorHandler) *ReportHandler {
	return &ReportHandler{reports: reports, errs: errs}
}

// LocationCoverage handles GET /api/v1/reports/location-coverage.
// @Summary Export location coverage
// @Description One row per location with its code, links, valid warehouses, place of supply and configuration problems
// @Tags reports
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponseBody "Invalid format"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /reports/location-coverage [get]
func (h *ReportHandler) LocationCoverage(c *gin.Context) {
	format, ok := report.ParseFormat(c.Query("format"))
	if !ok {
		h.errs.Handle(c, domain.ErrInvalidReportFormat)
		return
	}

	rows, err := h.reports.LocationCoverage(c.Request.Context())
	if err != nil {
		h.errs.Handle(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, rows); err != nil {
		h.errs.Handle(c, fmt.Errorf("writing coverage report: %w", err))
		return
	}

	filename := report.BuildFilename("location_coverage", format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, format.ContentType(), buf.Bytes())
}
