package dao

import (
	"context"

	"github.com/CCDD2022/shop-system/internal/model"
	"gorm.io/gorm"
)

type FeedbackDao struct {
	db *gorm.DB
}

func NewFeedbackDao(db *gorm.DB) *FeedbackDao {
	return &FeedbackDao{
		db: db,
	}
}

// ListFeedback 获取全部留言，新的在前
func (d *FeedbackDao) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	var feedback []*model.Feedback
	err := d.db.WithContext(ctx).Order("id DESC").Find(&feedback).Error
	return feedback, err
}

func (d *FeedbackDao) GetFeedbackByID(ctx context.Context, feedbackID int64) (*model.Feedback, error) {
	var fb model.Feedback
	err := d.db.WithContext(ctx).Where("id = ?", feedbackID).First(&fb).Error
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (d *FeedbackDao) CreateFeedback(ctx context.Context, fb *model.Feedback) (int64, error) {
	if err := d.db.WithContext(ctx).Create(fb).Error; err != nil {
		return 0, err
	}
	return fb.ID, nil
}

// DeleteFeedback 删除留言；不存在的ID静默忽略
func (d *FeedbackDao) DeleteFeedback(ctx context.Context, feedbackID int64) error {
	return d.db.WithContext(ctx).Where("id = ?", feedbackID).Delete(&model.Feedback{}).Error
}
