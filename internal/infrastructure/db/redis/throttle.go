package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginThrottle limits login attempts per username and origin using a
// fixed Redis counter window. Key format: login_attempts:<username>:<origin>
type LoginThrottle struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewLoginThrottle creates a throttle allowing limit attempts per window.
func NewLoginThrottle(client *redis.Client, limit int, window time.Duration) *LoginThrottle {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, limit: limit, window: window}
}

// Allow records an attempt and reports whether it falls within the limit.
// The window's TTL starts with the first attempt and is never extended, so
// a blocked caller gets unblocked once the window lapses.
func (t *LoginThrottle) Allow(ctx context.Context, username, origin string) (bool, error) {
	key := t.key(username, origin)

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return true, fmt.Errorf("throttle incr: %w", err)
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			return true, fmt.Errorf("throttle expire: %w", err)
		}
	}

	return n <= int64(t.limit), nil
}

func (t *LoginThrottle) key(username, origin string) string {
	return fmt.Sprintf("login_attempts:%s:%s", username, origin)
}
