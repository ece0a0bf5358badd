package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CCDD2022/shop-system/internal/model"
	"github.com/redis/go-redis/v9"
)

// Store 基于redis的会话存储。
// 每个会话两把键：购物车hash（field=商品ID，value=条目JSON）和用户邮箱。
// 会话归属由调用方传入的sessionID决定，互不可见
type Store struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewStore(rdb redis.UniversalClient, ttlHours int) *Store {
	return &Store{
		rdb: rdb,
		ttl: time.Duration(ttlHours) * time.Hour,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("session:%s:cart", sessionID)
}

func emailKey(sessionID string) string {
	return fmt.Sprintf("session:%s:email", sessionID)
}

// GetCart 读取整个购物车；会话不存在时返回空购物车
func (s *Store) GetCart(ctx context.Context, sessionID string) (model.Cart, error) {
	fields, err := s.rdb.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart failed: %w", err)
	}

	cart := make(model.Cart, len(fields))
	for productID, raw := range fields {
		var entry model.CartEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("decode cart entry failed: %w", err)
		}
		cart[productID] = entry
	}
	return cart, nil
}

// GetEntry 读取单个购物车条目；不存在返回 (nil, nil)
func (s *Store) GetEntry(ctx context.Context, sessionID string, productID int64) (*model.CartEntry, error) {
	raw, err := s.rdb.HGet(ctx, cartKey(sessionID), fmt.Sprint(productID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cart entry failed: %w", err)
	}

	var entry model.CartEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("decode cart entry failed: %w", err)
	}
	return &entry, nil
}

// PutEntry 写入（覆盖）单个购物车条目并续期会话
func (s *Store) PutEntry(ctx context.Context, sessionID string, entry model.CartEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cart entry failed: %w", err)
	}

	key := cartKey(sessionID)
	pipe := s.rdb.Pipeline()
	pipe.HSet(ctx, key, fmt.Sprint(entry.ID), raw)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write cart entry failed: %w", err)
	}
	return nil
}

// ClearCart 整体清空购物车（结账成功后调用）
func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear cart failed: %w", err)
	}
	return nil
}

// SetEmail 记住会话邮箱，用于查看订单历史与归属校验
func (s *Store) SetEmail(ctx context.Context, sessionID, email string) error {
	if err := s.rdb.Set(ctx, emailKey(sessionID), email, s.ttl).Err(); err != nil {
		return fmt.Errorf("set session email failed: %w", err)
	}
	return nil
}

// GetEmail 读取会话邮箱；未设置时返回空串
func (s *Store) GetEmail(ctx context.Context, sessionID string) (string, error) {
	email, err := s.rdb.Get(ctx, emailKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session email failed: %w", err)
	}
	return email, nil
}
