// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// negativeSentinel marks a cached "not found" so it can be told apart from a
// plain cache miss.
const negativeSentinel = "__nil__"

// RedisCache is the distributed cache tier. A nil *RedisCache is valid and
// behaves as an always-miss cache, so deployments without Redis degrade to
// memory-then-database.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(addr, password string, db int) *RedisCache {
	if addr == "" {
		return nil
	}
	return &RedisCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// Get unmarshals the value stored under key into dest. The second return
// reports a negative hit; dest is untouched in that case.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (found, negative bool, err error) {
	if c == nil {
		return false, false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("redis get %q: %w", key, err)
	}

	if raw == negativeSentinel {
		return true, true, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, false, fmt.Errorf("unmarshaling cached value for %q: %w", key, err)
	}
	return true, false, nil
}

// Set stores value under key as JSON with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling value for %q: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// SetNegative records a "not found" under key with the given TTL.
func (c *RedisCache) SetNegative(ctx context.Context, key string, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Set(ctx, key, negativeSentinel, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
