package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/metrics"
	"medstore/internal/service"
)

// InvoiceHandler handles sales document endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles POST /api/v1/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	metrics.InvoicesCreated.Inc()

	RespondCreated(c, invoice)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	filters, err := parseDateFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from/to must be RFC 3339 or YYYY-MM-DD")
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, invoice)
}

// Stats handles GET /api/v1/invoices/stats
func (h *InvoiceHandler) Stats(c *gin.Context) {
	filters, err := parseDateFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from/to must be RFC 3339 or YYYY-MM-DD")
		return
	}

	stats, err := h.invoiceService.Stats(c.Request.Context(), filters)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
