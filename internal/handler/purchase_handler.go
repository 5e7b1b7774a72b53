package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/metrics"
	"medstore/internal/service"
)

// PurchaseHandler handles stock-inward document endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles POST /api/v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	var input service.CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	metrics.PurchasesCreated.Inc()

	RespondCreated(c, purchase)
}

// List handles GET /api/v1/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	filters, err := parseDateFilters(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "from/to must be RFC 3339 or YYYY-MM-DD")
		return
	}

	purchases, total, err := h.purchaseService.List(c.Request.Context(), filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, purchases, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}
