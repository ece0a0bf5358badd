package v1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CCDD2022/shop-system/api/middleware"
	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/pkg/e"
)

// CartHandler 购物车处理器，挂在带会话中间件的shop路由组下
type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// AddToCart 加购：商品不存在时也返回成功（静默忽略，沿用原行为）
func (h *CartHandler) AddToCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.cart.Add(ctx, sid, productID); err != nil {
		Error(c, http.StatusInternalServerError, e.CART_ERROR, e.GetMsg(e.CART_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"product_id": productID}, "Added to cart")
}

// ViewCart 查看购物车与合计
func (h *CartHandler) ViewCart(c *gin.Context) {
	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	cart, total, err := h.cart.View(ctx, sid)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.CART_ERROR, e.GetMsg(e.CART_ERROR))
		return
	}

	Success(c, http.StatusOK, gin.H{
		"cart":  cart,
		"total": total,
	})
}

// RegisterRoutes 注册购物车路由
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.ViewCart)
		cart.POST("/items/:product_id", h.AddToCart)
	}
}
