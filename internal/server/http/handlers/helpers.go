package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/inkandimagination/artstore/internal/domain/errors"
	"github.com/inkandimagination/artstore/internal/server/http/dto"
	"github.com/inkandimagination/artstore/internal/server/http/middleware"
)

// CurrentAdminID extracts authenticated admin identifier from context.
func CurrentAdminID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.AdminIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// respondError maps a domain error onto the HTTP status and envelope.
func respondError(c *gin.Context, err error) {
	var validation domainErrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Error:   "validation failed",
			Errors:  validation.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, domainErrors.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, dto.Fail("payment verification failed"))
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail("invalid credentials"))
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail("not found"))
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.Fail("already exists"))
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.Fail("invalid status transition"))
	case errors.Is(err, domainErrors.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, dto.Fail("payment gateway unavailable"))
	default:
		c.JSON(http.StatusInternalServerError, dto.Fail("internal error"))
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.Fail(message))
}
