package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/rural_health_triage/internal/config"
)

// NewRedisClient создает клиент Redis для кэша геокодирования и очереди оповещений
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPass,
		DB:          cfg.RedisDB,
		PoolSize:    10,
		DialTimeout: cfg.OutboundTimeout,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return rdb, nil
}
