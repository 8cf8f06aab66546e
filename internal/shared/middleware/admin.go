package middleware

import (
	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 and message unless Authenticate stored the
// given role. Anonymous callers are rejected the same way.
func RequireRole(role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(shared.ContextRole) != role {
			response.Forbidden(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}
