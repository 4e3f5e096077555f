package advisor

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a ResponseCache backed by Redis, for deployments where
// several advisor processes should share one consultation cache. Expiry is
// delegated to Redis TTLs; the capacity bound is left to Redis memory policy.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache against the given address.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

// Get returns the cached value for key, treating any Redis error as a miss.
func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(context.Background(), key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores the value under key with the cache TTL.
func (r *RedisCache) Set(key, value string) error {
	return r.client.Set(context.Background(), key, value, r.ttl).Err()
}

// Close releases the underlying Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
