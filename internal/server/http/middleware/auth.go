package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/inkandimagination/artstore/internal/pkg/auth"
)

const (
	// AdminIDContextKey is a gin context key for the authenticated admin identifier.
	AdminIDContextKey = "adminID"
	authCookieName    = "artstore_token"
)

// TokenParser resolves a session token into an admin identifier.
type TokenParser interface {
	ParseToken(token string) (int64, error)
}

// AdminRequired ensures an admin is authenticated before accessing handler.
func AdminRequired(facade TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		adminID, err := facade.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(AdminIDContextKey, adminID)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
