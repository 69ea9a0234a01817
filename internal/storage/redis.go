package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds short-lived markers: coupon redemptions already applied
// to a booking and booking references handed out in this run. The database
// stays the source of truth; markers only make the duplicate checks cheap.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RedemptionKey(couponID, bookingID string) string {
	return "redeem:" + couponID + ":" + bookingID
}

func (c *RedisCache) ReferenceKey(reference string) string {
	return "ref:" + reference
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}
