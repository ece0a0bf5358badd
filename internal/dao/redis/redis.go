package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/CCDD2022/shop-system/config"

	"github.com/redis/go-redis/v9"
)

var redisDB redis.UniversalClient

// InitRedis 初始化会话存储用的redis客户端
func InitRedis(cfg *config.RedisConfig) (redis.UniversalClient, error) {
	uopts := &redis.UniversalOptions{
		Addrs:    []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		DB:       cfg.DB,
		Password: cfg.Password,

		// 重试和超时配置
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	}

	redisDB = redis.NewUniversalClient(uopts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := redisDB.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis连通失败: %w", err)
	}
	return redisDB, nil
}

func GetRedisDB() redis.UniversalClient {
	return redisDB
}
