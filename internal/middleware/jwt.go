package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"onboarding_system/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by JWTAuthMiddleware
const (
	ContextIdentity = "identity" // domain.Identity of the caller
	ContextRole     = "role"     // domain.Role of the caller
)

// JWTAuthMiddleware validates session tokens and puts the caller's
// identity and role into the request context
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the session token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextIdentity, claims.Identity) // Store identity in context
		c.Set(ContextRole, claims.Role)         // Store role in context
		c.Next()                                // Proceed to the next handler
	}
}
