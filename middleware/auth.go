package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stayhub-backend/utils"
)

// Auth validates the bearer token and, when roles are given, enforces that
// the caller holds one of them. userId and role are stored on the context
// for handlers.
func Auth(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				utils.JSONError(c, http.StatusForbidden, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
