package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kingRayhan/dating-app/internal/config"
)

// CountTTL bounds how long a cached liked-you count survives without
// being read or written.
const CountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.Client.Incr(ctx, key).Result()
}

func (c *RedisCache) Decr(ctx context.Context, key string) (int64, error) {
	return c.Client.Decr(ctx, key).Result()
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.Client.Exists(ctx, key).Result()
	return n > 0, err
}

func (c *RedisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.Client.Expire(ctx, key, ttl).Err()
}

// KeyForLikedYouCount generates the Redis key for a user's liked-you count.
func (c *RedisCache) KeyForLikedYouCount(userID uint64) string {
	return fmt.Sprintf("likes:count:%d", userID)
}

// IncrLikedYouCount raises a cached liked-you count after a new like
// lands, refreshing the TTL. A missing key is left missing; the next
// count read repopulates it from the database.
func (c *RedisCache) IncrLikedYouCount(ctx context.Context, userID uint64) error {
	key := c.KeyForLikedYouCount(userID)
	ok, err := c.Exists(ctx, key)
	if err != nil || !ok {
		return err
	}
	if _, err := c.Incr(ctx, key); err != nil {
		return err
	}
	return c.Expire(ctx, key, CountTTL)
}

// DecrLikedYouCount lowers a cached liked-you count when a liker drops
// out of it (the recipient passed them). Missing keys stay missing.
func (c *RedisCache) DecrLikedYouCount(ctx context.Context, userID uint64) error {
	key := c.KeyForLikedYouCount(userID)
	ok, err := c.Exists(ctx, key)
	if err != nil || !ok {
		return err
	}
	if _, err := c.Decr(ctx, key); err != nil {
		return err
	}
	return c.Expire(ctx, key, CountTTL)
}

// GetLikedYouCount reads a cached count. A cache miss is reported via
// the second return value, not as an error.
func (c *RedisCache) GetLikedYouCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForLikedYouCount(userID)
	val, err := c.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Expire(ctx, key, CountTTL)
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return count, true, nil
}

// SetLikedYouCount stores a freshly computed count with the standard TTL.
func (c *RedisCache) SetLikedYouCount(ctx context.Context, userID uint64, count int64) error {
	return c.Set(ctx, c.KeyForLikedYouCount(userID), count, CountTTL)
}
