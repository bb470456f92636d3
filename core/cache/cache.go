package cache

import (
	"context"
	"time"

	"calendar-api/core/config"
	"calendar-api/core/constants"
	"calendar-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is the minimal cache contract the auth flow depends on
type Cache interface {
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
	Close() error
}

type redisCache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Cache:NewCache:Ping", err)
		return nil, err
	}

	logger.Info("Redis cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &redisCache{client: client}, nil
}

func (c *redisCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to blacklist
		return nil
	}
	return c.client.Set(ctx, constants.RedisKeyTokenBlacklist+token, "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, constants.RedisKeyTokenBlacklist+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
