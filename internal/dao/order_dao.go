package dao

import (
	"context"

	"github.com/CCDD2022/shop-system/internal/model"
	"gorm.io/gorm"
)

type OrderDao struct {
	db *gorm.DB
}

func NewOrderDao(db *gorm.DB) *OrderDao {
	return &OrderDao{
		db: db,
	}
}

// CreateOrder 创建订单及其订单行，单事务。
// 任何一步失败整体回滚，不允许出现有单无行或有行无单的中间态
func (d *OrderDao) CreateOrder(ctx context.Context, order *model.Order, items []*model.OrderItem) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = order.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetOrderByID 根据ID获取订单
func (d *OrderDao) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	err := d.db.WithContext(ctx).Where("id = ?", orderID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderItems 获取订单行，实时关联商品表取当前 name/price
// （历史价格不保留，商品改价后订单详情跟着变）
func (d *OrderDao) GetOrderItems(ctx context.Context, orderID int64) ([]*model.OrderItemDetail, error) {
	var items []*model.OrderItemDetail
	err := d.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.quantity, products.name, products.price").
		Joins("JOIN products ON order_items.product_id = products.id").
		Where("order_items.order_id = ?", orderID).
		Scan(&items).Error
	return items, err
}

// ListOrdersByEmail 获取某邮箱的全部订单，按下单时间倒序
func (d *OrderDao) ListOrdersByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	var orders []*model.Order
	err := d.db.WithContext(ctx).
		Where("email = ?", email).
		Order("date DESC").
		Find(&orders).Error
	return orders, err
}

// ListAllOrders 获取全部订单（存储顺序）
func (d *OrderDao) ListAllOrders(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := d.db.WithContext(ctx).Find(&orders).Error
	return orders, err
}

// UpdateOrderStatus 无条件覆盖状态，不校验取值也不限制流转
func (d *OrderDao) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	return d.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

// UpdateOrderContact 只覆盖 address 和 phone，不触碰状态与合计
func (d *OrderDao) UpdateOrderContact(ctx context.Context, orderID int64, address, phone string) error {
	return d.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"address": address,
			"phone":   phone,
		}).Error
}

// DeleteOrder 先删订单行再删订单，单事务避免残留孤儿行。
// 不存在的ID静默忽略
func (d *OrderDao) DeleteOrder(ctx context.Context, orderID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", orderID).Delete(&model.Order{}).Error
	})
}
