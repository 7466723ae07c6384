package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stayhub-backend/observability"
)

// Cache is a small JSON-over-Redis cache. A nil *Cache is valid and acts
// as a cache that never hits, so callers don't branch on configuration.
type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// NewWithClient wraps an existing client. Used by tests.
func NewWithClient(c *redis.Client) *Cache {
	return &Cache{c: c}
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if r == nil {
		return false, nil
	}
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(v, dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if r == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, key, b, ttl).Err()
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if r == nil {
		return nil
	}
	observability.ObserveCache("redis", "del")
	return r.c.Del(ctx, key).Err()
}
