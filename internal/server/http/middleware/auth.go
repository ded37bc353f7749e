package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/pkg/auth"
)

// AuthRequired gates a route group behind bearer-token verification. A
// missing token is 401, a rejected one is 403, and a verifier fault is 500.
func AuthRequired(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access denied, no token provided"})
			return
		}

		if err := verifier.Verify(c.Request.Context(), token); err != nil {
			if errors.Is(err, domainErrors.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token verification failed"})
			return
		}

		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
