package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

// UserContextKey is where the verified user snapshot is stored in the gin
// context for downstream handlers.
const UserContextKey = "user"

// Auth verifies the bearer token on protected routes and puts the embedded
// user snapshot into the request context. Verification is stateless; the
// credential store is not consulted.
func Auth(tokens *service.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "authorization header is required"})
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "invalid authorization header"})
			return
		}

		user, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "invalid or expired token"})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}
