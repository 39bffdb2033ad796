package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yatra/pkg/utils"
)

// JWTAuthMiddleware binds wizard sessions to a caller identity. When no
// JWT_SECRET is configured the service runs open and requests proceed
// anonymously.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.AuthEnabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
