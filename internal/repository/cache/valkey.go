package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain/repository"
)

// Valkey - кеш поверх Valkey (совместим с Redis протоколом)
type Valkey struct {
	client valkey.Client
	logger *zap.Logger
}

// NewValkey создает клиент Valkey
func NewValkey(cfg *config.ValkeyConfig, logger *zap.Logger) (*Valkey, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{cfg.Addr},
		Password:    cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}

	logger.Info("Valkey connected", zap.String("addr", cfg.Addr))

	return &Valkey{client: client, logger: logger}, nil
}

var _ repository.CacheRepository = (*Valkey)(nil)

func (v *Valkey) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := v.client.Do(ctx, v.client.B().Get().Key(KeyPrefix+key).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return nil, nil // Cache miss
	}
	if err != nil {
		v.logger.Error("Failed to get from valkey", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}
	return b, nil
}

func (v *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// EX принимает целые секунды
	if ttl < time.Second {
		ttl = time.Second
	}
	err := v.client.Do(ctx,
		v.client.B().Set().Key(KeyPrefix+key).Value(valkey.BinaryString(value)).Ex(ttl).Build(),
	).Error()
	if err != nil {
		v.logger.Error("Failed to set valkey", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

func (v *Valkey) Delete(ctx context.Context, key string) error {
	if err := v.client.Do(ctx, v.client.B().Del().Key(KeyPrefix+key).Build()).Error(); err != nil {
		return fmt.Errorf("cache delete error: %w", err)
	}
	return nil
}

func (v *Valkey) Ping(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}

func (v *Valkey) Close() {
	v.logger.Info("Closing Valkey connection")
	v.client.Close()
}
