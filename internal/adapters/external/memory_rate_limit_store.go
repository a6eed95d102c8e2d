package external

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"leadmail.app/pkg/errors"
)

const memoryCleanupInterval = time.Minute

// MemoryRateLimitStore keeps fixed-window counters in process memory
type MemoryRateLimitStore struct {
	counters *gocache.Cache
	mutex    sync.Mutex
}

// NewMemoryRateLimitStore creates an in-memory rate limit store
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		counters: gocache.New(gocache.NoExpiration, memoryCleanupInterval),
	}
}

// Increment bumps the counter for key and returns its value within the current window
func (s *MemoryRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if key == "" {
		return 0, errors.NewValidationError("rate limit key cannot be empty")
	}
	if window <= 0 {
		return 0, errors.NewValidationError("rate limit window must be positive")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.counters.Add(key, int64(1), window); err == nil {
		return 1, nil
	}

	count, err := s.counters.IncrementInt64(key, 1)
	if err != nil {
		// expired between Add and IncrementInt64
		s.counters.Set(key, int64(1), window)
		return 1, nil
	}
	return count, nil
}
