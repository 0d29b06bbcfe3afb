package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
)

// Префиксы ключей кеша
const (
	geocodeKeyPrefix      = "geocode:"
	reverseKeyPrefix      = "reverse:"
	autocompleteKeyPrefix = "autocomplete:"
)

// CacheEntry - запись кеша геокодирования. NotFound - негативный результат.
type CacheEntry struct {
	Key         string                          `json:"key"`
	Result      *domain.GeocodeResult           `json:"result,omitempty"`
	Suggestions []domain.AutocompleteSuggestion `json:"suggestions,omitempty"`
	NotFound    bool                            `json:"not_found,omitempty"`
	ExpiresAt   time.Time                       `json:"expires_at"`
}

// GeocodeCache хранит результаты геокодирования поверх CacheRepository.
// Срок жизни проверяется при чтении по часам кеша, поэтому TTL соблюдается
// одинаково для любого хранилища.
type GeocodeCache struct {
	store  repository.CacheRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewGeocodeCache создает кеш. now == nil - системное время.
func NewGeocodeCache(store repository.CacheRepository, now func() time.Time, logger *zap.Logger) *GeocodeCache {
	if now == nil {
		now = time.Now
	}
	return &GeocodeCache{
		store:  store,
		now:    now,
		logger: logger,
	}
}

// Get возвращает действующую запись. Ошибки хранилища считаются промахом.
func (c *GeocodeCache) Get(ctx context.Context, key string) (*CacheEntry, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Geocode cache read failed, treating as miss", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if data == nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Warn("Corrupted geocode cache entry", zap.String("key", key), zap.Error(err))
		_ = c.store.Delete(ctx, key)
		return nil, false
	}

	if entry.Key != key || !c.now().Before(entry.ExpiresAt) {
		return nil, false
	}

	return &entry, true
}

// Put сохраняет запись на ttl. Ошибки хранилища только логируются.
func (c *GeocodeCache) Put(ctx context.Context, key string, entry CacheEntry, ttl time.Duration) {
	entry.Key = key
	entry.ExpiresAt = c.now().Add(ttl)

	data, err := json.Marshal(entry)
	if err != nil {
		c.logger.Error("Failed to marshal geocode cache entry", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.Set(ctx, key, data, ttl); err != nil {
		c.logger.Warn("Geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// GeocodeKey - ключ прямого геокодирования: адрес без пробелов по краям
// и в нижнем регистре плюс код страны
func GeocodeKey(address, country string) string {
	return geocodeKeyPrefix + hashKey(normalizeText(address)+":"+normalizeText(country))
}

// ReverseKey - ключ обратного геокодирования: координаты округлены до 4 знаков (~11 м)
func ReverseKey(coord domain.Coordinate, country string) string {
	return reverseKeyPrefix + hashKey(formatRounded(coord.Lat)+","+formatRounded(coord.Lng)+":"+normalizeText(country))
}

// AutocompleteKey - ключ подсказок, лимит входит в ключ
func AutocompleteKey(query, country string, limit int) string {
	return autocompleteKeyPrefix + hashKey(normalizeText(query)+":"+normalizeText(country)+":"+strconv.Itoa(limit))
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func formatRounded(v float64) string {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		r = 0 // -0 и 0 дают один ключ
	}
	return strconv.FormatFloat(r, 'f', 4, 64)
}

func hashKey(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
