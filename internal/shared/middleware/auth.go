package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"scentpress-backend/internal/shared/response"
	"scentpress-backend/pkg/jwt"
)

// RequireAdmin guards the write routes of the admin panel. Public catalog
// reads stay open.
func RequireAdmin(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := manager.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID.String())
		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
