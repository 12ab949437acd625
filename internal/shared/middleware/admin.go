package middleware

import (
	"github.com/gin-gonic/gin"

	"ngo-cms-backend/internal/shared/response"
)

// AdminMiddleware yêu cầu role "admin" trong context (set bởi AuthMiddleware)
// Mọi mutating route của CMS đứng sau middleware này
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get("role")
		if !ok {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		if r, ok := role.(string); !ok || r != "admin" {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
