package ports

import (
	"context"
	"time"
)

// RateLimitStore counts requests per key inside a fixed window.
// Increment returns the count after incrementing; the window starts with the first hit.
type RateLimitStore interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}
