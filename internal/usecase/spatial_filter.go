package usecase

import (
	"context"
	"strings"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/pkg/validator"
	"github.com/room-search-microservice/internal/usecase/dto"
)

// AddressGeocoder - прямое геокодирование, нужное построителю фильтров
type AddressGeocoder interface {
	Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SpatialFilterBuilder превращает непроверенные фильтры запроса в RoomQuery.
// Гео-фильтр выбирается по приоритету: адрес, bounding box, радиус, без гео-ограничения.
type SpatialFilterBuilder struct {
	geocoder      AddressGeocoder
	defaultRadius float64
	qualifiers    []string
}

// NewSpatialFilterBuilder создает новый SpatialFilterBuilder
func NewSpatialFilterBuilder(geocoder AddressGeocoder, cfg config.SearchConfig) *SpatialFilterBuilder {
	radius := cfg.DefaultAddressRadius
	if radius <= 0 {
		radius = 5000
	}
	return &SpatialFilterBuilder{
		geocoder:      geocoder,
		defaultRadius: radius,
		qualifiers:    cfg.DistrictQualifiers,
	}
}

// Build валидирует фильтры и собирает дескриптор запроса.
// Некорректный фильтр - *domain.ValidationError, ненайденный адрес - ошибка вида not_found.
func (b *SpatialFilterBuilder) Build(ctx context.Context, req dto.RoomSearchRequest) (*domain.RoomQuery, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	query := &domain.RoomQuery{
		Attributes: domain.AttributeFilter{
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
			MinArea:  req.MinArea,
			MaxArea:  req.MaxArea,
			RoomType: domain.RoomType(req.RoomType),
			Status:   domain.RoomStatus(req.Status),
		}.Normalize(),
		Limit: domain.MaxSearchResults,
	}

	switch {
	case strings.TrimSpace(req.Address) != "":
		if err := b.applyAddress(ctx, query, req); err != nil {
			return nil, err
		}

	case req.HasBoundingBox():
		bbox, err := domain.NewBoundingBox(*req.North, *req.South, *req.East, *req.West)
		if err != nil {
			return nil, err
		}
		query.BoundingBox = &bbox

	case req.HasRadius():
		center, err := domain.NewCoordinate(*req.Lat, *req.Lng)
		if err != nil {
			return nil, err
		}
		rq, err := domain.NewRadiusQuery(center, *req.Radius)
		if err != nil {
			return nil, err
		}
		query.Radius = &rq
	}

	return query, nil
}

func (b *SpatialFilterBuilder) applyAddress(ctx context.Context, query *domain.RoomQuery, req dto.RoomSearchRequest) error {
	radius := b.defaultRadius
	if req.AddressRadius != nil {
		radius = *req.AddressRadius
	}
	// Радиус проверяется до обращения к провайдеру
	if _, err := domain.NewRadiusQuery(domain.Coordinate{}, radius); err != nil {
		return err
	}

	address := strings.TrimSpace(req.Address)
	result, err := b.geocoder.Geocode(ctx, address, req.Country)
	if err != nil {
		return err
	}
	if result == nil {
		return addressNotFound(address)
	}

	rq, err := domain.NewRadiusQuery(result.Coordinate, radius)
	if err != nil {
		return err
	}
	center := result.Coordinate

	query.Radius = &rq
	query.DistanceFrom = &center
	query.AddressPatterns = b.districtPatterns(result.AddressComponents.District)
	return nil
}

// districtPatterns строит ILIKE шаблоны для района: само имя и имя с квалификатором ("Quận Đống Đa").
// Сужение дополняет радиус, а не заменяет его.
func (b *SpatialFilterBuilder) districtPatterns(district string) []string {
	district = strings.TrimSpace(district)
	if district == "" {
		return nil
	}

	patterns := make([]string, 0, len(b.qualifiers)+1)
	patterns = append(patterns, "%"+likeEscaper.Replace(district)+"%")
	for _, q := range b.qualifiers {
		patterns = append(patterns, "%"+likeEscaper.Replace(q+" "+district)+"%")
	}
	return patterns
}
