package handler

import (
	"github.com/gin-gonic/gin"

	"medstore/internal/service"
)

// DashboardHandler handles the store overview endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview handles GET /api/v1/dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	data, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, data)
}
