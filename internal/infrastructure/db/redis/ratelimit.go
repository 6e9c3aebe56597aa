package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RequestLimiter is a fixed-window counter backed by Redis.
// Key format: otp_rl:<email>, expiring after the window.
type RequestLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRequestLimiter creates a limiter allowing limit requests per key
// per window.
func NewRequestLimiter(client *redis.Client, limit int, window time.Duration) *RequestLimiter {
	return &RequestLimiter{client: client, limit: int64(limit), window: window}
}

// Allow counts one request for email and reports whether it is within
// the window's budget. The first request in a window sets the expiry.
func (l *RequestLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := l.key(email)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.limit, nil
}

func (l *RequestLimiter) key(email string) string {
	return "otp_rl:" + email
}
