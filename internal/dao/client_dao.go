package dao

import (
	"context"

	"github.com/CCDD2022/shop-system/internal/model"
	"gorm.io/gorm"
)

type ClientDao struct {
	db *gorm.DB
}

func NewClientDao(db *gorm.DB) *ClientDao {
	return &ClientDao{
		db: db,
	}
}

func (d *ClientDao) ListClients(ctx context.Context) ([]*model.Client, error) {
	var clients []*model.Client
	err := d.db.WithContext(ctx).Find(&clients).Error
	return clients, err
}

func (d *ClientDao) GetClientByID(ctx context.Context, clientID int64) (*model.Client, error) {
	var client model.Client
	err := d.db.WithContext(ctx).Where("id = ?", clientID).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (d *ClientDao) CreateClient(ctx context.Context, client *model.Client) (int64, error) {
	if err := d.db.WithContext(ctx).Create(client).Error; err != nil {
		return 0, err
	}
	return client.ID, nil
}

// UpdateClient 整体覆盖全部字段
func (d *ClientDao) UpdateClient(ctx context.Context, clientID int64, client *model.Client) error {
	return d.db.WithContext(ctx).Model(&model.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]interface{}{
			"name":        client.Name,
			"email":       client.Email,
			"phone":       client.Phone,
			"address":     client.Address,
			"has_courses": client.HasCourses,
		}).Error
}

// DeleteClient 删除客户；不存在的ID静默忽略
func (d *ClientDao) DeleteClient(ctx context.Context, clientID int64) error {
	return d.db.WithContext(ctx).Where("id = ?", clientID).Delete(&model.Client{}).Error
}
