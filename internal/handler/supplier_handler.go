package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/service"
)

// SupplierHandler handles supplier endpoints.
type SupplierHandler struct {
	supplierService service.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Create handles POST /api/v1/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var input service.CreateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, supplier)
}

// List handles GET /api/v1/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	search := c.Query("search")

	suppliers, total, err := h.supplierService.List(c.Request.Context(), search, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, suppliers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/suppliers/:id
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, supplier)
}

// Update handles PUT /api/v1/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid supplier ID")
		return
	}

	var input service.UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, supplier)
}

// Delete handles DELETE /api/v1/suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
