package service

import (
	"context"
	"fmt"
	"time"

	"github.com/CCDD2022/shop-system/internal/dao"
	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/CCDD2022/shop-system/internal/mq"
	"github.com/CCDD2022/shop-system/internal/session"
	"github.com/CCDD2022/shop-system/pkg/logger"
)

// OrderService 订单引擎：购物车快照到订单的转换、状态与联系方式改写、
// 归属范围内的查询。publisher 可为 nil（未启用MQ）
type OrderService struct {
	orderDao  *dao.OrderDao
	sessions  *session.Store
	publisher *mq.Publisher
}

func NewOrderService(orderDao *dao.OrderDao, sessions *session.Store, publisher *mq.Publisher) *OrderService {
	return &OrderService{
		orderDao:  orderDao,
		sessions:  sessions,
		publisher: publisher,
	}
}

// CreateOrder 把购物车快照持久化为订单+订单行（单事务），返回新订单ID。
// 合计在此刻根据快照算定，之后商品改价不回溯。
// 空购物车不拦截，生成合计为0的订单
func (s *OrderService) CreateOrder(ctx context.Context, email, address, phone string, cart model.Cart) (int64, error) {
	order := &model.Order{
		Email:      email,
		Address:    address,
		Phone:      phone,
		TotalPrice: cart.Total(),
		Status:     model.OrderStatusNew,
		Date:       time.Now(),
	}

	items := make([]*model.OrderItem, 0, len(cart))
	for _, entry := range cart {
		items = append(items, &model.OrderItem{
			ProductID: entry.ID,
			Quantity:  entry.Quantity,
		})
	}

	if err := s.orderDao.CreateOrder(ctx, order, items); err != nil {
		logger.ErrorContext(ctx, "create order failed", "email", email, "err", err)
		return 0, fmt.Errorf("create order failed: %w", err)
	}

	s.publish(mq.OrderEvent{
		Type:       mq.EventOrderCreated,
		OrderID:    order.ID,
		Email:      order.Email,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
	})

	return order.ID, nil
}

// Checkout 结账：取会话购物车下单，成功后记住会话邮箱并清空购物车。
// 下单失败时购物车原样保留
func (s *OrderService) Checkout(ctx context.Context, sessionID, email, address, phone string) (int64, error) {
	cart, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	orderID, err := s.CreateOrder(ctx, email, address, phone, cart)
	if err != nil {
		return 0, err
	}

	if err := s.sessions.SetEmail(ctx, sessionID, email); err != nil {
		logger.WarnContext(ctx, "remember session email failed", "err", err)
	}
	if err := s.sessions.ClearCart(ctx, sessionID); err != nil {
		// 订单已落库，清空失败只记日志
		logger.WarnContext(ctx, "clear cart after checkout failed", "err", err)
	}

	return orderID, nil
}

// GetOrder 只取订单行本身（归属校验用）
func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return s.orderDao.GetOrderByID(ctx, orderID)
}

// GetOrderDetails 获取订单及其订单行（关联商品表的当前 name/price）
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int64) (*model.Order, []*model.OrderItemDetail, error) {
	order, err := s.orderDao.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderDao.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// ListOrdersByEmail 某邮箱的订单，按下单时间倒序
func (s *OrderService) ListOrdersByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	return s.orderDao.ListOrdersByEmail(ctx, email)
}

// ListAllOrders 全部订单（存储顺序）
func (s *OrderService) ListAllOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderDao.ListAllOrders(ctx)
}

// UpdateStatus 无条件覆盖订单状态，取值不做校验
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if err := s.orderDao.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return err
	}
	s.publish(mq.OrderEvent{
		Type:    mq.EventOrderStatusChanged,
		OrderID: orderID,
		Status:  status,
	})
	return nil
}

// UpdateContact 只覆盖收货地址和电话
func (s *OrderService) UpdateContact(ctx context.Context, orderID int64, address, phone string) error {
	return s.orderDao.UpdateOrderContact(ctx, orderID, address, phone)
}

// DeleteOrder 删除订单及其订单行；不存在的ID静默忽略
func (s *OrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := s.orderDao.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.publish(mq.OrderEvent{
		Type:    mq.EventOrderDeleted,
		OrderID: orderID,
	})
	return nil
}

// CanAccess 归属校验：会话邮箱与订单邮箱一致时放行；
// 会话未设置邮箱时同样放行（沿用原有的宽松行为）
func (s *OrderService) CanAccess(sessionEmail string, order *model.Order) bool {
	if sessionEmail == "" {
		return true
	}
	return order != nil && order.Email == sessionEmail
}

func (s *OrderService) publish(ev mq.OrderEvent) {
	ev.Time = time.Now()
	if err := s.publisher.PublishOrderEvent(ev); err != nil {
		logger.Warn("publish order event failed", "type", ev.Type, "order_id", ev.OrderID, "err", err)
	}
}
