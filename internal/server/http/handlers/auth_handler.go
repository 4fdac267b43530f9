package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/server/http/dto"
	"github.com/inkandimagination/artstore/internal/server/http/middleware"
)

// AuthHandler processes admin registration, login and identity lookups.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	admin, token, err := h.facade.RegisterAdmin(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusCreated, dto.OK(dto.AuthResponse{Token: token, Admin: dto.FromAdmin(admin)}))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	admin, token, err := h.facade.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.OK(dto.AuthResponse{Token: token, Admin: dto.FromAdmin(admin)}))
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	admin, err := h.facade.Admin(c.Request.Context(), CurrentAdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromAdmin(admin)))
}
