package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain/repository"
)

// NewStore выбирает хранилище кеша геокодирования по CACHE_BACKEND.
// Для redis используется общий клиент; close освобождает только то, что создано здесь.
func NewStore(cfg *config.Config, redisClient *Redis, logger *zap.Logger) (store repository.CacheRepository, closeFn func(), err error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		if redisClient == nil {
			return nil, nil, fmt.Errorf("redis cache backend requires a redis connection")
		}
		return NewRedisStore(redisClient), func() {}, nil

	case config.CacheBackendValkey:
		v, err := NewValkey(&cfg.Valkey, logger)
		if err != nil {
			return nil, nil, err
		}
		return v, v.Close, nil

	case config.CacheBackendMemory:
		m := NewMemory(cfg.Cache.SweepInterval, nil)
		logger.Info("Using in-memory geocode cache", zap.Duration("sweep_interval", cfg.Cache.SweepInterval))
		return m, m.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
