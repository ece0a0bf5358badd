package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CCDD2022/shop-system/internal/service"
	"github.com/CCDD2022/shop-system/pkg/e"
)

type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

type createFeedbackRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

// ListFeedback 获取全部留言
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	feedback, err := h.feedback.ListFeedback(ctx)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.FEEDBACK_RETRIEVAL_ERROR, e.GetMsg(e.FEEDBACK_RETRIEVAL_ERROR))
		return
	}

	Success(c, http.StatusOK, feedback)
}

// CreateFeedback 创建留言，name/email/message 均必填
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req createFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_JSON, e.GetMsg(e.INVALID_JSON))
		return
	}
	if req.Name == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "name")
		return
	}
	if req.Email == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "email")
		return
	}
	if req.Message == nil {
		ErrorMissingField(c, e.MISSING_FIELD, "message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	feedbackID, err := h.feedback.CreateFeedback(ctx, *req.Name, *req.Email, *req.Message)
	if err != nil {
		Error(c, http.StatusInternalServerError, e.FEEDBACK_CREATION_ERROR, e.GetMsg(e.FEEDBACK_CREATION_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusCreated, gin.H{"feedback_id": feedbackID}, "Feedback submitted successfully")
}

// DeleteFeedback API面删除留言：先查存在性，不存在返回404
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	feedbackID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.feedback.GetFeedback(ctx, feedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Error(c, http.StatusNotFound, e.FEEDBACK_NOT_FOUND, e.GetMsg(e.FEEDBACK_NOT_FOUND))
			return
		}
		Error(c, http.StatusInternalServerError, e.FEEDBACK_DELETE_ERROR, e.GetMsg(e.FEEDBACK_DELETE_ERROR))
		return
	}

	if err := h.feedback.DeleteFeedback(ctx, feedbackID); err != nil {
		Error(c, http.StatusInternalServerError, e.FEEDBACK_DELETE_ERROR, e.GetMsg(e.FEEDBACK_DELETE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"deleted_id": feedbackID}, "Feedback deleted successfully")
}

// AdminDeleteFeedback 后台删除留言：不存在的ID静默忽略（与404的API面有别）
func (h *FeedbackHandler) AdminDeleteFeedback(c *gin.Context) {
	feedbackID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		Error(c, http.StatusBadRequest, e.INVALID_PARAMS, e.GetMsg(e.INVALID_PARAMS))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.feedback.DeleteFeedback(ctx, feedbackID); err != nil {
		Error(c, http.StatusInternalServerError, e.FEEDBACK_DELETE_ERROR, e.GetMsg(e.FEEDBACK_DELETE_ERROR))
		return
	}

	SuccessWithMessage(c, http.StatusOK, gin.H{"deleted_id": feedbackID}, "Feedback deleted")
}

// RegisterRoutes 注册留言 JSON API 路由
func (h *FeedbackHandler) RegisterRoutes(rg *gin.RouterGroup) {
	feedback := rg.Group("/feedback")
	{
		feedback.GET("", h.ListFeedback)
		feedback.POST("", h.CreateFeedback)
		feedback.DELETE("/:id", h.DeleteFeedback)
	}
}

// RegisterAdminRoutes 注册后台留言路由（需管理员令牌）
func (h *FeedbackHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.DELETE("/feedback/:id", h.AdminDeleteFeedback)
}
