package middleware

import (
	"strings"

	"catalog-backend/internal/shared"
	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TokenValidator parses and verifies an access token.
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Authenticate resolves the caller from a Bearer token.
// No Authorization header: the request continues anonymously.
// A malformed header or an invalid/expired token: 401.
func Authenticate(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str(shared.ContextRequestID, c.GetString(shared.ContextRequestID)).Msg("token rejected")
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(shared.ContextUserID, claims.UserID)
		c.Set(shared.ContextRole, claims.Role)

		c.Next()
	}
}
