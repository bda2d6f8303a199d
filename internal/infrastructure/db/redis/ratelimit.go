package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore counts requests per client in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<client>
type RateLimitStore struct {
	client *redis.Client
}

// NewRateLimitStore creates a RateLimitStore wrapping the given Redis client.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Incr bumps the counter for the client within the scope and returns the new
// count. The window TTL is set when the counter is first created, so the
// window is fixed rather than sliding.
func (s *RateLimitStore) Incr(ctx context.Context, scope, client string, window time.Duration) (int64, error) {
	key := s.key(scope, client)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	return incr.Val(), nil
}

func (s *RateLimitStore) key(scope, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, client)
}
