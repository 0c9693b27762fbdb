package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bytestudio_backend/internal/auth"
	"bytestudio_backend/pkg/apperrors"
	"bytestudio_backend/pkg/contextkeys"
)

// AuthMiddleware validates the bearer token and stores the identity in the
// gin context. A "token" query parameter is accepted as a fallback because
// browser websocket clients cannot set headers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorized("auth", "Authentication required."))
			return
		}

		claims, err := auth.ParseToken(token, secret)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewUnauthorized("auth", "Invalid or expired token."))
			return
		}

		c.Set(contextkeys.UserID, claims.UserID)
		c.Set(contextkeys.UserEmail, claims.Email)
		c.Next()
	}
}
