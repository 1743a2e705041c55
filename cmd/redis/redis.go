package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/redis/go-redis/v9"
)

// New creates the Redis client using provided configuration and verifies
// connectivity. It returns a nil client when Redis is disabled.
func New(cfg *config.Config) (*redis.Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config provided")
	}
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	opt := &redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	c := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("unable to ping redis at %s: %w", addr, err)
	}

	return c, nil
}
