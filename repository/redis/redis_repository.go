package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	GetCount(ctx context.Context, key string) (int64, error)
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client
// turns every call into a no-op, which disables the features built on it.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// GetCount reads an integer counter; a missing key counts as zero
func (r *redis) GetCount(ctx context.Context, key string) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}

// IncrWithTTL increments a counter. The TTL is set when the counter is
// created, so the window starts at the first increment.
func (r *redis) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}
