package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/CCDD2022/shop-system/internal/session"
	"gorm.io/gorm"
)

// CartService 购物车操作。购物车归属完全由调用方传入的 sessionID 决定，
// 只支持加购和整体清空，没有减量或移除单项的操作
type CartService struct {
	productDao *dao.ProductDao
	sessions   *session.Store
}

func NewCartService(productDao *dao.ProductDao, sessions *session.Store) *CartService {
	return &CartService{
		productDao: productDao,
		sessions:   sessions,
	}
}

// Add 加购：商品不存在时静默忽略；已在购物车则数量+1，
// 否则以当前 name/price 快照新建数量为1的条目
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64) error {
	product, err := s.productDao.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("look up product failed: %w", err)
	}

	entry, err := s.sessions.GetEntry(ctx, sessionID, productID)
	if err != nil {
		return err
	}
	if entry != nil {
		entry.Quantity++
	} else {
		entry = &model.CartEntry{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: 1,
		}
	}

	return s.sessions.PutEntry(ctx, sessionID, *entry)
}

// View 返回购物车条目与合计
func (s *CartService) View(ctx context.Context, sessionID string) (model.Cart, float64, error) {
	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	return cart, cart.Total(), nil
}

// Clear 整体清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.ClearCart(ctx, sessionID)
}
