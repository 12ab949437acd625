package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ngo-cms-backend/internal/shared/response"
	"ngo-cms-backend/pkg/jwt"
)

// AuthMiddleware - Middleware xác thực JWT token
// Đây là capability check đứng trước MỌI mutating operation:
// unauthorized => 401 ngay, không chạm persistence
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	manager := jwt.NewManager(jwtSecret)

	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		// 4. Extract userID từ claims
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		// 5. Set userID + role vào context cho downstream handlers
		c.Set("userID", userID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
