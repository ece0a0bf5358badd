package middleware

import (
	"github.com/CCDD2022/shop-system/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey gin上下文中会话ID的键名
const SessionIDKey = "session_id"

// ShopSessionMiddleware 购物会话中间件：从cookie取会话ID，没有就生成一个新的。
// 会话数据本身存redis，cookie只携带ID
func ShopSessionMiddleware(cfg *config.SessionConfig) gin.HandlerFunc {
	maxAge := cfg.TTLHours * 3600
	return func(c *gin.Context) {
		sid, err := c.Cookie(cfg.CookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
		}
		// 每次请求都重新下发cookie，滚动续期
		c.SetCookie(cfg.CookieName, sid, maxAge, "/", "", false, true)
		c.Set(SessionIDKey, sid)

		c.Next()
	}
}
