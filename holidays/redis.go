package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/warp/leave-planner/calendar"
)

// RedisCache stores snapshots as JSON strings.
type RedisCache struct {
	client redis.Cmdable
}

// NewRedisCache wraps a go-redis client.
func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// DialRedis parses a redis:// URL and checks the server is reachable.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (calendar.Holidays, bool, error) {
	b, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var h calendar.Holidays
	if err := json.Unmarshal(b, &h); err != nil {
		return nil, false, fmt.Errorf("decode cached holidays: %w", err)
	}
	if h == nil {
		return nil, false, nil
	}
	return h, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, h calendar.Holidays, ttl time.Duration) error {
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}
