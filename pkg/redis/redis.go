package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/codewithnuh/school-management-system-sub000/config"
)

// Client wraps the redis connection. Currently backs the weekly-timetable
// read cache; cache misses and redis failures always fall through to the
// database, so the service runs degraded without redis.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── weekly timetable cache ──

const weeklyCacheTTL = 5 * time.Minute

// GetWeekly returns the cached weekly view payload for a key, or "" on miss.
func (c *Client) GetWeekly(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	return val, err
}

// SetWeekly stores a weekly view payload under the given key.
func (c *Client) SetWeekly(ctx context.Context, key, payload string) error {
	return c.rdb.Set(ctx, key, payload, weeklyCacheTTL).Err()
}

// InvalidateClass removes every cached weekly view for a class.
// Called after a successful timetable regeneration.
func (c *Client) InvalidateClass(ctx context.Context, classID string) error {
	pattern := fmt.Sprintf("weekly:%s:*", classID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
