package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/CCDD2022/shop-system/pkg/e"
	"github.com/CCDD2022/shop-system/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 后台管理认证中间件：校验登录时签发的管理员令牌
func AdminAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  e.GetMsg(e.AUTH_REQUIRED),
				"code":   e.AUTH_REQUIRED,
				"status": http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  "Invalid Authorization format",
				"code":   e.AUTH_FAILED,
				"status": http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		claims, err := jwtUtil.ParseToken(parts[1])
		if err != nil || !claims.IsAdmin {
			msg := e.GetMsg(e.AUTH_FAILED)
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = "admin session expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":  msg,
				"code":   e.AUTH_FAILED,
				"status": http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set("is_admin", true)

		c.Next()
	}
}
