package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/server/http/dto"
)

// AdminHandler serves the aggregated admin dashboard views.
type AdminHandler struct {
	facade DashboardFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade DashboardFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromDashboard(dash)))
}

// Activity handles GET /api/admin/activity.
func (h *AdminHandler) Activity(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			badRequest(c, "invalid query parameter limit")
			return
		}
		limit = v
	}

	entries, err := h.facade.Activity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.FromActivity(entries)
	c.JSON(http.StatusOK, dto.OKList(response, len(response)))
}
