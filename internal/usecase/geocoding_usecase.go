package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
	"github.com/room-search-microservice/internal/pkg/metrics"
)

// MinAutocompleteQueryLength - короче этого подсказки не запрашиваются (в символах)
const MinAutocompleteQueryLength = 2

// Метки операций для метрик кеша
const (
	opForward = "geocode"
	opReverse = "reverse"
	opSuggest = "autocomplete"
)

// GeocodingUseCase - единственная точка входа для геокодирования:
// кеш, затем провайдер, с кешированием негативных результатов
type GeocodingUseCase struct {
	provider repository.GeocodingProvider
	cache    *GeocodeCache
	cfg      config.GeocodingConfig
	group    singleflight.Group
	logger   *zap.Logger
}

// NewGeocodingUseCase создает новый GeocodingUseCase
func NewGeocodingUseCase(
	provider repository.GeocodingProvider,
	cache *GeocodeCache,
	cfg config.GeocodingConfig,
	logger *zap.Logger,
) *GeocodingUseCase {
	if cfg.DefaultCountry == "" {
		cfg.DefaultCountry = "vn"
	}
	return &GeocodingUseCase{
		provider: provider,
		cache:    cache,
		cfg:      cfg,
		logger:   logger,
	}
}

// Geocode разрешает адрес в координаты. Пустой адрес - (nil, nil).
// Если адрес не найден, возвращается ошибка вида not_found, и этот исход кешируется.
func (uc *GeocodingUseCase) Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, nil
	}
	country = uc.country(country)
	key := GeocodeKey(address, country)

	if entry, ok := uc.cache.Get(ctx, key); ok {
		metrics.GeocodeCacheHits.WithLabelValues(opForward).Inc()
		if entry.NotFound || entry.Result == nil {
			return nil, addressNotFound(address)
		}
		return entry.Result, nil
	}
	metrics.GeocodeCacheMisses.WithLabelValues(opForward).Inc()

	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		result, err := uc.provider.Forward(ctx, address, country)
		if err != nil {
			if domain.IsAddressNotFound(err) {
				uc.cache.Put(ctx, key, CacheEntry{NotFound: true}, uc.cfg.NegativeTTL)
			}
			return nil, err
		}
		uc.cache.Put(ctx, key, CacheEntry{Result: result}, uc.cfg.GeocodeTTL)
		return result, nil
	})
	if err != nil {
		if domain.IsAddressNotFound(err) {
			return nil, addressNotFound(address)
		}
		uc.logger.Error("Geocoding failed",
			zap.String("country", country),
			zap.String("kind", string(domain.GeocodeKind(err))),
			zap.Error(err))
		return nil, err
	}

	return v.(*domain.GeocodeResult), nil
}

// ReverseGeocode разрешает координаты в адрес. nil координата - (nil, nil).
func (uc *GeocodingUseCase) ReverseGeocode(ctx context.Context, coord *domain.Coordinate, country string) (*domain.GeocodeResult, error) {
	if coord == nil {
		return nil, nil
	}
	country = uc.country(country)
	key := ReverseKey(*coord, country)

	if entry, ok := uc.cache.Get(ctx, key); ok {
		metrics.GeocodeCacheHits.WithLabelValues(opReverse).Inc()
		if entry.NotFound || entry.Result == nil {
			return nil, coordinatesNotFound(*coord)
		}
		return entry.Result, nil
	}
	metrics.GeocodeCacheMisses.WithLabelValues(opReverse).Inc()

	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		result, err := uc.provider.Reverse(ctx, *coord, country)
		if err != nil {
			if domain.IsAddressNotFound(err) {
				uc.cache.Put(ctx, key, CacheEntry{NotFound: true}, uc.cfg.NegativeTTL)
			}
			return nil, err
		}
		uc.cache.Put(ctx, key, CacheEntry{Result: result}, uc.cfg.GeocodeTTL)
		return result, nil
	})
	if err != nil {
		if domain.IsAddressNotFound(err) {
			return nil, coordinatesNotFound(*coord)
		}
		uc.logger.Error("Reverse geocoding failed",
			zap.Stringer("coordinate", *coord),
			zap.String("kind", string(domain.GeocodeKind(err))),
			zap.Error(err))
		return nil, err
	}

	return v.(*domain.GeocodeResult), nil
}

// Autocomplete возвращает подсказки адреса и никогда не возвращает ошибку:
// при любом сбое провайдера результат пустой. Лимит передается провайдеру как есть.
func (uc *GeocodingUseCase) Autocomplete(ctx context.Context, query, country string, limit int) []domain.AutocompleteSuggestion {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinAutocompleteQueryLength {
		return []domain.AutocompleteSuggestion{}
	}
	country = uc.country(country)
	key := AutocompleteKey(query, country, limit)

	if entry, ok := uc.cache.Get(ctx, key); ok {
		metrics.GeocodeCacheHits.WithLabelValues(opSuggest).Inc()
		return nonNil(entry.Suggestions)
	}
	metrics.GeocodeCacheMisses.WithLabelValues(opSuggest).Inc()

	v, err, _ := uc.group.Do(key, func() (interface{}, error) {
		suggestions, err := uc.provider.Suggest(ctx, query, country, limit)
		if err != nil {
			return nil, err
		}
		ttl := uc.cfg.AutocompleteTTL
		if len(suggestions) == 0 {
			ttl = uc.cfg.NegativeTTL
		}
		uc.cache.Put(ctx, key, CacheEntry{Suggestions: suggestions}, ttl)
		return suggestions, nil
	})
	if err != nil {
		uc.logger.Warn("Autocomplete failed, returning empty suggestions",
			zap.String("country", country),
			zap.String("kind", string(domain.GeocodeKind(err))),
			zap.Error(err))
		return []domain.AutocompleteSuggestion{}
	}

	return nonNil(v.([]domain.AutocompleteSuggestion))
}

func (uc *GeocodingUseCase) country(country string) string {
	if country = strings.ToLower(strings.TrimSpace(country)); country != "" {
		return country
	}
	return uc.cfg.DefaultCountry
}

func addressNotFound(address string) error {
	return domain.NewGeocodingError(domain.GeocodeErrNotFound, fmt.Sprintf("Address not found: %s", address), nil)
}

func coordinatesNotFound(coord domain.Coordinate) error {
	return domain.NewGeocodingError(domain.GeocodeErrNotFound, fmt.Sprintf("Address not found for coordinates %s", coord), nil)
}

func nonNil(s []domain.AutocompleteSuggestion) []domain.AutocompleteSuggestion {
	if s == nil {
		return []domain.AutocompleteSuggestion{}
	}
	return s
}
