package middleware

import (
	"strings"

	"adboard/response"
	"adboard/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xử lý authentication theo token company-scoped
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, companyID, err := services.GetCompanyFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Lưu thông tin user vào context
		c.Set("userID", userID)
		c.Set("companyID", companyID)
		c.Next()
	}
}
