package repository

import (
	"context"

	"github.com/room-search-microservice/internal/domain"
)

// GeocodingProvider определяет методы внешнего провайдера геокодирования.
// Все ошибки возвращаются как *domain.GeocodingError.
type GeocodingProvider interface {
	// Forward возвращает лучшее совпадение для адреса
	Forward(ctx context.Context, address, country string) (*domain.GeocodeResult, error)

	// Reverse возвращает адрес для координат (типы address и poi)
	Reverse(ctx context.Context, coord domain.Coordinate, country string) (*domain.GeocodeResult, error)

	// Suggest возвращает подсказки в порядке релевантности провайдера
	Suggest(ctx context.Context, query, country string, limit int) ([]domain.AutocompleteSuggestion, error)
}
