package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medstore/internal/service"
	"medstore/internal/xlsxexport"
)

// GSTReportHandler handles GSTR-1 report endpoints.
type GSTReportHandler struct {
	reportService service.GSTReportService
}

// NewGSTReportHandler creates a new GSTReportHandler.
func NewGSTReportHandler(reportService service.GSTReportService) *GSTReportHandler {
	return &GSTReportHandler{reportService: reportService}
}

// Generate handles GET /api/v1/reports/gstr1
func (h *GSTReportHandler) Generate(c *gin.Context) {
	filters, err := parseDateFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from/to must be RFC 3339 or YYYY-MM-DD")
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}

// Export handles GET /api/v1/reports/gstr1/export
// Serves the report as a 4-sheet xlsx workbook download.
func (h *GSTReportHandler) Export(c *gin.Context) {
	filters, err := parseDateFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from/to must be RFC 3339 or YYYY-MM-DD")
		return
	}

	// The workbook is rendered in memory before any header is committed, so
	// an export failure still gets a clean JSON error instead of a
	// truncated download. Monthly reports are small.
	var buf bytes.Buffer
	if err := h.reportService.ExportXLSX(c.Request.Context(), filters, &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.Filename(time.Now().UTC())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
