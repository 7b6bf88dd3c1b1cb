package middleware

import (
	"github.com/gin-gonic/gin"

	"vista/response"
	"vista/services"
)

// AuthMiddleware xử lý authentication, giới hạn theo loại tài khoản nếu có
func AuthMiddleware(accountTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := services.ExtractToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, accountType, err := services.GetUserFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(accountTypes) > 0 {
			hasType := false
			for _, allowed := range accountTypes {
				if allowed == accountType {
					hasType = true
					break
				}
			}
			if !hasType {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("accountType", accountType)
		c.Next()
	}
}

// RequireAccountType kiểm tra loại tài khoản đã gán trong context
func RequireAccountType(accountTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountType, exists := c.Get("accountType")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		current := accountType.(string)
		hasType := false
		for _, allowed := range accountTypes {
			if allowed == current {
				hasType = true
				break
			}
		}

		if !hasType {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
