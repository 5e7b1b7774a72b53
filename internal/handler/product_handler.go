package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input service.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, product)
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	search := c.Query("search")

	products, total, err := h.productService.List(c.Request.Context(), search, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/products/:id
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Update handles PUT /api/v1/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	var input service.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, product)
}

// Delete handles DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}

// LowStock handles GET /api/v1/products/low-stock
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.LowStock(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}

// Expiring handles GET /api/v1/products/expiring
func (h *ProductHandler) Expiring(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "90"))
	if days <= 0 {
		days = 90
	}

	products, err := h.productService.Expiring(c.Request.Context(), days)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, products)
}
