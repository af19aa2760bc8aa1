package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/codeninjahub/codeninjahub/internal/platform/constants"
	redisstore "github.com/codeninjahub/codeninjahub/internal/platform/redis"
)

// RedisCache shares rendered pages between site instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache stores pages under the "page:" prefix. A non-positive ttl
// keeps pages until evicted.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (cache *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	page, err := cache.client.Get(ctx, constants.RedisPrefixPage+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: get %s: %w", key, err)
	}
	return page, true, nil
}

func (cache *RedisCache) Set(ctx context.Context, key string, page []byte) error {
	ttl := cache.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := cache.client.Set(ctx, constants.RedisPrefixPage+key, page, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return nil
}

func (cache *RedisCache) Ping(ctx context.Context) error {
	return redisstore.Ping(ctx, cache.client)
}

func (cache *RedisCache) Name() string { return "redis" }
