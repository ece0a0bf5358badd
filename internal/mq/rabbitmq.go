package mq

// 订单事件发布封装：
// - 根据配置初始化连接与生产者通道池（未启用时 Publisher 为 nil，发布为空操作）
// - 通道开启 Confirm 模式，后台协程统一处理确认结果，发布本身不阻塞等待 ACK
// - 服务进程内不带消费者，事件由外部系统订阅

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/CCDD2022/shop-system/config"
	"github.com/CCDD2022/shop-system/pkg/logger"
	"github.com/streadway/amqp"
)

// 订单事件类型，作为路由键的最后一段
const (
	EventOrderCreated       = "created"
	EventOrderStatusChanged = "status_changed"
	EventOrderDeleted       = "deleted"
)

// OrderEvent 发布到交换机的订单事件载荷
type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	Email      string    `json:"email,omitempty"`
	Status     string    `json:"status,omitempty"`
	TotalPrice float64   `json:"total_price,omitempty"`
	Time       time.Time `json:"time"`
}

type channelWrapper struct {
	ch *amqp.Channel
	// 只读通道，接收来自服务器的发布确认结果
	confirms <-chan amqp.Confirmation
}

// Publisher 维护一个连接与一组带异步确认处理的生产者通道
type Publisher struct {
	conn     *amqp.Connection
	channels chan *channelWrapper
	exchange string
	mu       sync.Mutex // 防止Close被并发调用
	closed   bool
}

// Init 建立连接、声明交换机并填充通道池。cfg.Enabled 为 false 时返回 (nil, nil)
func Init(cfg *config.MQConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq failed: %w", err)
	}

	p := &Publisher{
		conn:     conn,
		channels: make(chan *channelWrapper, cfg.ChannelPoolSize),
		exchange: cfg.Exchange,
	}

	// 声明交换机；队列由消费方自行声明绑定
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel failed: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange failed: %w", err)
	}
	_ = ch.Close()

	for i := 0; i < cfg.ChannelPoolSize; i++ {
		cw, err := p.createChannelWrapper()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("open channel failed: %w", err)
		}
		p.channels <- cw
	}

	logger.Info("MQ publisher initialized", "exchange", cfg.Exchange, "pool_size", cfg.ChannelPoolSize)
	return p, nil
}

// createChannelWrapper 创建一个带异步确认处理的生产者通道包装
func (p *Publisher) createChannelWrapper() (*channelWrapper, error) {
	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable confirm failed: %w", err)
	}

	conf := ch.NotifyPublish(make(chan amqp.Confirmation, 256))
	// 后台异步处理确认结果：仅记录 Nack
	go func(c <-chan amqp.Confirmation) {
		for cf := range c {
			if !cf.Ack {
				logger.Warn("order event not acked", "delivery_tag", cf.DeliveryTag)
			}
		}
	}(conf)
	return &channelWrapper{ch: ch, confirms: conf}, nil
}

// PublishOrderEvent 发布订单事件。Publisher 为 nil（未启用MQ）时为空操作
func (p *Publisher) PublishOrderEvent(ev OrderEvent) error {
	if p == nil {
		return nil
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode order event failed: %w", err)
	}

	// Close 之后从已关闭的池里只能收到 nil
	cw := <-p.channels
	if cw == nil || p.closed {
		return fmt.Errorf("publisher closed")
	}
	defer func() {
		if !p.closed {
			p.channels <- cw
		}
	}()

	return cw.ch.Publish(p.exchange, "order."+ev.Type, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	})
}

// Close 关闭所有资源
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.channels)
	for cw := range p.channels {
		_ = cw.ch.Close()
	}
	_ = p.conn.Close()
}
