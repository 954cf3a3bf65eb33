package middleware

import (
	"strings"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer access token and puts the resolved user
// id and role into the request context. It only verifies; issuing and
// refreshing live in the auth handlers.
func AuthMiddleware(tokens *services.TokenManager, blacklist *services.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if blacklist.IsRevoked(c.Request.Context(), tokenString) {
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		claims, err := tokens.ParseOfType(tokenString, services.TokenTypeAccess)
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			utils.Unauthorized(c, "Invalid token claims")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}

		c.Next()
	}
}
