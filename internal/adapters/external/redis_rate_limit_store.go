package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"leadmail.app/internal/config"
	"leadmail.app/pkg/errors"
)

const rateLimitKeyPrefix = "leadmail:ratelimit:"

// RedisRateLimitStore keeps fixed-window counters in Redis so they are shared between instances
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore connects to Redis and verifies the connection
func NewRedisRateLimitStore(config *config.RedisConfig) (*RedisRateLimitStore, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisRateLimitStore{client: client}, nil
}

// Increment bumps the counter for key, starting the window on the first hit
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if key == "" {
		return 0, errors.NewValidationError("rate limit key cannot be empty")
	}
	if window <= 0 {
		return 0, errors.NewValidationError("rate limit window must be positive")
	}

	redisKey := rateLimitKeyPrefix + key
	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, errors.NewExternalAPIError("redis incr operation failed", err)
	}

	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return 0, errors.NewExternalAPIError("redis expire operation failed", err)
		}
	}

	return count, nil
}

// Close closes the Redis connection
func (s *RedisRateLimitStore) Close() error {
	return s.client.Close()
}
