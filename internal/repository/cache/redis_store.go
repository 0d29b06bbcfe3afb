package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain/repository"
)

// KeyPrefix - пространство имен сервиса в общем Redis/Valkey
const KeyPrefix = "room-search:"

// redisStore - хранилище кеша геокодирования поверх go-redis
type redisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore создает хранилище кеша на общем подключении Redis
func NewRedisStore(r *Redis) repository.CacheRepository {
	return &redisStore{
		client: r.client,
		logger: r.logger,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Запись без срока жизни в общем Redis не нужна
	if ttl <= 0 {
		return fmt.Errorf("redis set %s: ttl must be positive, got %s", key, ttl)
	}
	if err := s.client.Set(ctx, KeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	s.logger.Debug("Geocode cache stored", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, KeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
