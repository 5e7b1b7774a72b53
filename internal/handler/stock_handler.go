package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/service"
)

// StockHandler handles stock movement endpoints.
type StockHandler struct {
	stockService service.StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Movements handles GET /api/v1/stock/movements
func (h *StockHandler) Movements(c *gin.Context) {
	var productID *uuid.UUID
	if raw := c.Query("product_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
			return
		}
		productID = &id
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	movements, err := h.stockService.Movements(c.Request.Context(), productID, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, movements)
}

// Adjust handles POST /api/v1/stock/adjustments
func (h *StockHandler) Adjust(c *gin.Context) {
	var input service.AdjustStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	movement, err := h.stockService.Adjust(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, movement)
}
