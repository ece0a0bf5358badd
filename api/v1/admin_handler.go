package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/pkg/e"
	"github.com/CCDD2022/shop-system/pkg/logger"
	"github.com/CCDD2022/shop-system/pkg/utils"
)

// AdminHandler 后台登录与总览。
// 认证就是拿提交的口令和配置里的值做明文相等比较，
// 比对通过签发管理员令牌作为会话标记。没有多账号、没有散列、没有爆破防护
type AdminHandler struct {
	password string
	jwtUtil  *utils.JWTUtil

	catalog  *service.CatalogService
	orders   *service.OrderService
	clients  *service.ClientService
	feedback *service.FeedbackService
}

func NewAdminHandler(
	password string,
	jwtUtil *utils.JWTUtil,
	catalog *service.CatalogService,
	orders *service.OrderService,
	clients *service.ClientService,
	feedback *service.FeedbackService,
) *AdminHandler {
	return &AdminHandler{
		password: password,
		jwtUtil:  jwtUtil,
		catalog:  catalog,
		orders:   orders,
		clients:  clients,
		feedback: feedback,
	}
}

type loginRequest struct {
	Password *string `json:"password"`
}

// Login 口令登录，签发管理员令牌
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}
	if req.Password == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "password")
		return
	}

	if *req.Password != h.password {
		logger.Warn("admin login rejected", "ip", c.ClientIP())
		Error(c, http.StatusUnauthorized, e.WRONG_PASSWORD, e.GetMsg(e.WRONG_PASSWORD))
		return
	}

	token, err := h.jwtUtil.GenerateAdminToken()
	if err != nil {
		Error(c, http.StatusInternalServerError, e.ERROR, e.GetMsg(e.ERROR))
		return
	}

	logger.Info("admin logged in", "ip", c.ClientIP())
	Success(c, http.StatusOK, gin.H{"token": token})
}

// Dashboard 后台总览：留言、订单、客户、商品一次性全量返回
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	feedback, err := h.feedback.ListFeedback(ctx)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.FEEDBACK_RETRIEVAL_ERROR, e.GetMsg(e.FEEDBACK_RETRIEVAL_ERROR))
		return
	}
	orders, err := h.orders.ListAllOrders(ctx)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.ORDER_RETRIEVAL_ERROR, e.GetMsg(e.ORDER_RETRIEVAL_ERROR))
		return
	}
	clients, err := h.clients.ListClients(ctx)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.CLIENT_RETRIEVAL_ERROR, e.GetMsg(e.CLIENT_RETRIEVAL_ERROR))
		return
	}
	products, err := h.catalog.ListProducts(ctx, service.ParseProductFilter("", "", "", ""))
	if err != nil {
		Error(c, http.StatusInternalServerError, e.PRODUCT_RETRIEVAL_ERROR, e.GetMsg(e.PRODUCT_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, gin.H{
		"feedback": feedback,
		"orders":   orders,
		"clients":  clients,
		"products": products,
	})
}

// RegisterLoginRoute 登录路由不走认证中间件
func (h *AdminHandler) RegisterLoginRoute(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// RegisterAdminRoutes 注册后台总览路由（需管理员令牌）
func (h *AdminHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}
