package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CCDD2022/shop-system/api/middleware"
	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/internal/session"
	"github.com/CCDD2022/shop-system/pkg/e"
)

// ShopHandler 购物会话面的订单操作：结账、订单历史、归属范围内的联系方式修改。
// 归属校验是宽松的：会话没有邮箱时直接放行（沿用原行为）
type ShopHandler struct {
	orders   *service.OrderService
	sessions *session.Store
}

func NewShopHandler(orders *service.OrderService, sessions *session.Store) *ShopHandler {
	return &ShopHandler{orders: orders, sessions: sessions}
}

type checkoutRequest struct {
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Phone   string  `json:"phone"`
}

type setEmailRequest struct {
	Email *string `json:"email"`
}

type updateContactRequest struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Checkout 用会话购物车结账，成功后记住邮箱并清空购物车
func (h *ShopHandler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}
	if req.Email == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "email")
		return
	}
	if req.Address == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "address")
		return
	}

	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.orders.Checkout(ctx, sid, *req.Email, *req.Address, req.Phone)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.CHECKOUT_ERROR, e.GetMsg(e.CHECKOUT_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusCreated, gin.H{"order_id": orderID}, "Order created successfully")
}

// SetEmail 记住会话邮箱，用于之后查看订单历史
func (h *ShopHandler) SetEmail(c *gin.Context) {
	var req setEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}
	if req.Email == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "email")
		return
	}

	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.sessions.SetEmail(ctx, sid, *req.Email); err != nil {
		Error(c, http.StatusInternalServerError, e.SESSION_ERROR, e.GetMsg(e.SESSION_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"email": *req.Email}, "Email remembered")
}

// MyOrders 会话邮箱的订单历史，按时间倒序。未设置邮箱时返回空数据提示
func (h *ShopHandler) MyOrders(c *gin.Context) {
	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	email, err := h.sessions.GetEmail(ctx, sid)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.SESSION_ERROR, e.GetMsg(e.SESSION_ERROR))
		return
	}
	if email == "" {
		SuccessWithMessage(c, http.StatusOK, gin.H{"orders": nil, "email": ""}, "No email set for this session")
		return
	}

	orders, err := h.orders.ListOrdersByEmail(ctx, email)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_RETRIEVAL_ERROR, e.GetMsg(e.ORDER_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, gin.H{
		"orders": orders,
		"email":  email,
	})
}

// MyOrderDetails 查看单个订单详情，归属校验宽松
func (h *ShopHandler) MyOrderDetails(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, items, err := h.orders.GetOrderDetails(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Error(c, http.StatusNotFound, e.ORDER_NOT_FOUND, e.GetMsg(e.ORDER_NOT_FOUND))
			return
		}
		Error(c, http.StatusInternalServerError, e.ORDER_RETRIEVAL_ERROR, e.GetMsg(e.ORDER_RETRIEVAL_ERROR))
		return
	}

	email, err := h.sessions.GetEmail(ctx, sid)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.SESSION_ERROR, e.GetMsg(e.SESSION_ERROR))
		return
	}
	if !h.orders.CanAccess(email, order) {
		Error(c, http.StatusForbidden, e.ORDER_ACCESS_DENIED, e.GetMsg(e.ORDER_ACCESS_DENIED))
		return
	}

	Success(c, http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

// UpdateMyOrderContact 修改订单联系方式（地址与电话），归属校验宽松
func (h *ShopHandler) UpdateMyOrderContact(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}

	sid := c.GetString(middleware.SessionIDKey)
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Error(c, http.StatusNotFound, e.ORDER_NOT_FOUND, e.GetMsg(e.ORDER_NOT_FOUND))
			return
		}
		Error(c, http.StatusInternalServerError, e.ORDER_RETRIEVAL_ERROR, e.GetMsg(e.ORDER_RETRIEVAL_ERROR))
		return
	}

	email, err := h.sessions.GetEmail(ctx, sid)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.SESSION_ERROR, e.GetMsg(e.SESSION_ERROR))
		return
	}
	if !h.orders.CanAccess(email, order) {
		Error(c, http.StatusForbidden, e.ORDER_ACCESS_DENIED, e.GetMsg(e.ORDER_ACCESS_DENIED))
		return
	}

	if err := h.orders.UpdateContact(ctx, orderID, req.Address, req.Phone); err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_UPDATE_ERROR, e.GetMsg(e.ORDER_UPDATE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"order_id": orderID}, "Contact info updated")
}

// RegisterRoutes 注册购物会话路由
func (h *ShopHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
	orders := rg.Group("/orders")
	{
		orders.GET("", h.MyOrders)
		orders.POST("", h.SetEmail)
		orders.GET("/:id", h.MyOrderDetails)
		orders.PUT("/:id/contact", h.UpdateMyOrderContact)
	}
}
