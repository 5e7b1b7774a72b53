package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medstore/internal/service"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var input service.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, customer)
}

// List handles GET /api/v1/customers
func (h *CustomerHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	search := c.Query("search")

	customers, total, err := h.customerService.List(c.Request.Context(), search, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Update handles PUT /api/v1/customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer ID")
		return
	}

	var input service.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, customer)
}

// Delete handles DELETE /api/v1/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": true})
}
