package ports

import "context"

// LoginThrottle limits repeated login attempts per username and origin.
type LoginThrottle interface {
	// Allow records an attempt and reports whether it is within the
	// configured window limit.
	Allow(ctx context.Context, username, origin string) (bool, error)
}
