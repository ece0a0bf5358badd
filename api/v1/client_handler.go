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

// ClientHandler 客户档案处理器，只挂在后台路由下
type ClientHandler struct {
	clients *service.ClientService
}

func NewClientHandler(clients *service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// clientRequest has_courses 兼容布尔和表单风格的字符串（"1"/"on"/"true"/"yes"）
type clientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	HasCourses any    `json:"has_courses"`
}

func (r *clientRequest) toModel() *model.Client {
	client := &model.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
	switch v := r.HasCourses.(type) {
	case bool:
		client.HasCourses = v
	case string:
		client.HasCourses = v == "1" || v == "on" || v == "true" || v == "yes"
	}
	return client
}

// ListClients 获取全部客户
func (h *ClientHandler) ListClients(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	clients, err := h.clients.ListClients(ctx)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.CLIENT_RETRIEVAL_ERROR, e.GetMsg(e.CLIENT_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, clients)
}

// CreateClient 新建客户，名字必填
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	clientID, err := h.clients.CreateClient(ctx, req.toModel())
	if err != nil {
		if errors.Is(err, service.ErrClientName) {
			ErrorMissingField(c, e.MISSING_FIELD, "name")
			return
		}
		Error(c, http.StatusInternalServerError, e.CLIENT_SAVE_ERROR, e.GetMsg(e.CLIENT_SAVE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusCreated, gin.H{"client_id": clientID}, "Client created successfully")
}

// UpdateClient 整体覆盖客户字段
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.clients.UpdateClient(ctx, clientID, req.toModel()); err != nil {
		Error(c, http.StatusInternalServerError, e.CLIENT_SAVE_ERROR, e.GetMsg(e.CLIENT_SAVE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"client_id": clientID}, "Client updated successfully")
}

// GetClient 获取单个客户
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	client, err := h.clients.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Error(c, http.StatusNotFound, e.CLIENT_RETRIEVAL_ERROR, "client not found")
			return
		}
		Error(c, http.StatusInternalServerError, e.CLIENT_RETRIEVAL_ERROR, e.GetMsg(e.CLIENT_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, client)
}

// DeleteClient 删除客户；不存在的ID静默忽略
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.clients.DeleteClient(ctx, clientID); err != nil {
		Error(c, http.StatusInternalServerError, e.CLIENT_DELETE_ERROR, e.GetMsg(e.CLIENT_DELETE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"deleted_id": clientID}, "Client deleted successfully")
}

// RegisterAdminRoutes 注册后台客户路由（需管理员令牌）
func (h *ClientHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.POST("", h.CreateClient)
		clients.PUT("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}
