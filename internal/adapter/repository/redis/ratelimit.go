package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// SigninLimiter throttles failed sign-in attempts per username. The counter
// lives in Redis so the limit holds across server instances.
type SigninLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewSigninLimiter creates a limiter allowing limit failures per window.
func NewSigninLimiter(client *redis.Client, limit int64, window time.Duration) *SigninLimiter {
	return &SigninLimiter{
		client: client,
		prefix: "minipay:signin:",
		limit:  limit,
		window: window,
	}
}

// Allow reports whether the username is still under the failure limit.
func (l *SigninLimiter) Allow(ctx context.Context, username string) (bool, error) {
	count, err := l.client.Get(ctx, l.prefix+username).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return count < l.limit, nil
}

// RecordFailure bumps the failure counter, starting the window on the first
// failure.
func (l *SigninLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.prefix + username
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

// Reset clears the counter after a successful sign-in.
func (l *SigninLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.prefix+username).Err()
}
