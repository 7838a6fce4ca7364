package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides fixed-window request counting backed by Redis.
// Key format: ratelimit:<scope>:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit hits per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records a hit for key under scope and reports whether it is still
// within the window's budget.
func (l *RateLimiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	k := l.key(scope, key)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= l.limit, nil
}

func (l *RateLimiter) key(scope, key string) string {
	windowStart := time.Now().Unix() / int64(l.window.Seconds()) * int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, key, windowStart)
}
