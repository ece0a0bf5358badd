package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/pkg/e"
)

// OrderHandler 订单 HTTP 处理器（JSON API 面）
type OrderHandler struct {
	orders *service.OrderService
}

func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// createOrderRequest 下单请求体。指针字段用于区分"缺失"和"空值"，
// cart 为 API 调用方自带的购物车快照
type createOrderRequest struct {
	Email   *string    `json:"email"`
	Address *string    `json:"address"`
	Phone   string     `json:"phone"`
	Cart    model.Cart `json:"cart"`
}

type updateOrderRequest struct {
	Status *string `json:"status"`
}

// ListOrders 获取全部订单，带 email 查询参数时只返回该邮箱的订单（按时间倒序）
func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var (
		orders []*model.Order
		err    error
	)
	if email := c.Query("email"); email != "" {
		orders, err = h.orders.ListOrdersByEmail(ctx, email)
	} else {
		orders, err = h.orders.ListAllOrders(ctx)
	}
	if err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_RETRIEVAL_ERROR, e.GetMsg(e.ORDER_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, orders)
}

// GetOrder 获取订单详情：{order, items[]}，items 带商品当前 name/price
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

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

	Success(c, http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

// CreateOrder 用请求体自带的购物车快照下单
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
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
	if req.Cart == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "cart")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	orderID, err := h.orders.CreateOrder(ctx, *req.Email, *req.Address, req.Phone, req.Cart)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_CREATION_ERROR, e.GetMsg(e.ORDER_CREATION_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusCreated, gin.H{"order_id": orderID}, "Order created successfully")
}

// UpdateOrder 更新订单状态（任意字符串，无流转限制）
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}
	if req.Status == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "status")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.orders.UpdateStatus(ctx, orderID, *req.Status); err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_UPDATE_ERROR, e.GetMsg(e.ORDER_UPDATE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"order_id": orderID}, "Order updated successfully")
}

// RemoveOrder 删除订单及其订单行；不存在的ID静默忽略
func (h *OrderHandler) RemoveOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.orders.DeleteOrder(ctx, orderID); err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_DELETE_ERROR, e.GetMsg(e.ORDER_DELETE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"order_id": orderID}, "Order deleted successfully")
}

// RegisterRoutes 注册订单 JSON API 路由
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.RemoveOrder)
	}
}

// RegisterAdminRoutes 注册后台订单路由（需管理员令牌）
func (h *OrderHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id/status", h.UpdateOrder)
		orders.DELETE("/:id", h.RemoveOrder)
	}
}
