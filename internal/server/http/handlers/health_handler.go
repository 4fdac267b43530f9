package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/server/http/dto"
)

// Pinger reports backing store connectivity.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	pinger Pinger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(pinger Pinger) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.pinger.HealthCheck(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Fail("database unavailable"))
		return
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "ok"})
}
