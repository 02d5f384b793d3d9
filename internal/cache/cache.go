// Package cache provides an injected TTL cache for computed score payloads.
// Instances are always constructed and passed in explicitly — never a
// process-wide global — and callers must behave identically with a cold or
// absent cache: it is a read-path accelerator, not a source of truth.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the minimal TTL cache surface the delivery layer uses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
	Invalidate(ctx context.Context, key string)
}

// RedisCache backs Cache with a redis client. All failures degrade to a
// miss; the caller recomputes.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedis connects a cache to a redis address. The prefix namespaces keys
// so multiple deployments can share one instance.
func NewRedis(addr, password, prefix string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client, prefix: prefix}, nil
}

func (c *RedisCache) key(k string) string { return c.prefix + ":" + k }

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	_ = c.client.Set(ctx, c.key(key), val, ttl).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	_ = c.client.Del(ctx, c.key(key)).Err()
}

// None is the disabled cache: every read misses, writes are dropped. Using
// it keeps call sites free of nil checks.
type None struct{}

func (None) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (None) Set(context.Context, string, []byte, time.Duration) {}
func (None) Invalidate(context.Context, string)                 {}
