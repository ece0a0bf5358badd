package service

import (
	"context"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
)

type FeedbackService struct {
	feedbackDao *dao.FeedbackDao
}

func NewFeedbackService(feedbackDao *dao.FeedbackDao) *FeedbackService {
	return &FeedbackService{
		feedbackDao: feedbackDao,
	}
}

// ListFeedback 全部留言，新的在前
func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	return s.feedbackDao.ListFeedback(ctx)
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, name, email, message string) (int64, error) {
	return s.feedbackDao.CreateFeedback(ctx, &model.Feedback{
		Name:    name,
		Email:   email,
		Message: message,
	})
}

// GetFeedback 按ID查留言（API删除前的存在性检查用）
func (s *FeedbackService) GetFeedback(ctx context.Context, feedbackID int64) (*model.Feedback, error) {
	return s.feedbackDao.GetFeedbackByID(ctx, feedbackID)
}

// DeleteFeedback 删除留言；不存在的ID静默忽略
func (s *FeedbackService) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	return s.feedbackDao.DeleteFeedback(ctx, feedbackID)
}
