package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kissan/pkg/utils"
)

func JWTAuthMiddleware(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// OptionalJWTMiddleware sets the identity when a valid token is present
// but never rejects the request; the session probe resolves "no identity"
// instead of failing.
func OptionalJWTMiddleware(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := tokens.ValidateToken(tokenString); err == nil {
				c.Set("user_id", claims.Subject)
				c.Set("email", claims.Email)
			}
		}
		c.Next()
	}
}
