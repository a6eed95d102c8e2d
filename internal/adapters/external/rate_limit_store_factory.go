package external

import (
	"fmt"

	"leadmail.app/internal/config"
	"leadmail.app/internal/ports"
	"leadmail.app/pkg/errors"
)

type RateLimitStoreFactory struct{}

func NewRateLimitStoreFactory() *RateLimitStoreFactory {
	return &RateLimitStoreFactory{}
}

func (f *RateLimitStoreFactory) CreateRateLimitStore(cfg *config.RateLimitConfig) (ports.RateLimitStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("rate limit config cannot be nil", nil)
	}

	switch cfg.Store {
	case config.StoreTypeMemory:
		return NewMemoryRateLimitStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisRateLimitStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported rate limit store: %s", cfg.Store.String()), nil)
	}
}
