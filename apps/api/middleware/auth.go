package middleware

import (
	"net/http"
	"strings"

	"github.com/cecepns/rn-aneka-jaya/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 后台管理接口的令牌门卫。
// 校验失败直接 401 短路，不会进入任何处理器逻辑。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 格式 "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		// 解析出的身份放入 Context，供后续处理器使用
		c.Set("userId", claims.UserId)
		c.Set("username", claims.Username)

		c.Next()
	}
}
