package service

import (
	"context"
	"errors"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
)

// ErrClientName 新建客户必须有名字
var ErrClientName = errors.New("client name is required")

type ClientService struct {
	clientDao *dao.ClientDao
}

func NewClientService(clientDao *dao.ClientDao) *ClientService {
	return &ClientService{
		clientDao: clientDao,
	}
}

func (s *ClientService) ListClients(ctx context.Context) ([]*model.Client, error) {
	return s.clientDao.ListClients(ctx)
}

func (s *ClientService) GetClient(ctx context.Context, clientID int64) (*model.Client, error) {
	return s.clientDao.GetClientByID(ctx, clientID)
}

// CreateClient 新建客户，名字为空时拒绝
func (s *ClientService) CreateClient(ctx context.Context, client *model.Client) (int64, error) {
	if client.Name == "" {
		return 0, ErrClientName
	}
	return s.clientDao.CreateClient(ctx, client)
}

// UpdateClient 整体覆盖客户字段（编辑不做名字校验，沿用原行为）
func (s *ClientService) UpdateClient(ctx context.Context, clientID int64, client *model.Client) error {
	return s.clientDao.UpdateClient(ctx, clientID, client)
}

// DeleteClient 删除客户；不存在的ID静默忽略
func (s *ClientService) DeleteClient(ctx context.Context, clientID int64) error {
	return s.clientDao.DeleteClient(ctx, clientID)
}
