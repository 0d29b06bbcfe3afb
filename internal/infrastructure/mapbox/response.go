package mapbox

import (
	"strings"

	"github.com/room-search-microservice/internal/domain"
)

// placesResponse - ответ Mapbox places API (только используемые поля)
type placesResponse struct {
	Features []placeFeature `json:"features"`
}

type placeFeature struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	PlaceName string         `json:"place_name"`
	PlaceType []string       `json:"place_type"`
	Relevance float64        `json:"relevance"`
	Center    []float64      `json:"center"`
	Context   []placeContext `json:"context"`
}

type placeContext struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func (f *placeFeature) coordinate() (domain.Coordinate, error) {
	// center приходит как [lng, lat]
	if len(f.Center) != 2 {
		return domain.Coordinate{}, domain.NewGeocodingError(domain.GeocodeErrParse,
			"feature has no valid center", nil)
	}
	coord, err := domain.NewCoordinate(f.Center[1], f.Center[0])
	if err != nil {
		return domain.Coordinate{}, domain.NewGeocodingError(domain.GeocodeErrParse,
			"feature center out of range", err)
	}
	return coord, nil
}

func (f *placeFeature) placeType() string {
	if len(f.PlaceType) == 0 {
		return ""
	}
	return f.PlaceType[0]
}

func (f *placeFeature) toResult() (*domain.GeocodeResult, error) {
	coord, err := f.coordinate()
	if err != nil {
		return nil, err
	}
	return &domain.GeocodeResult{
		Coordinate:        coord,
		FormattedAddress:  f.PlaceName,
		PlaceType:         f.placeType(),
		AddressComponents: f.components(),
	}, nil
}

func (f *placeFeature) toSuggestion() (*domain.AutocompleteSuggestion, error) {
	coord, err := f.coordinate()
	if err != nil {
		return nil, err
	}
	return &domain.AutocompleteSuggestion{
		ID:                f.ID,
		Text:              f.Text,
		PlaceName:         f.PlaceName,
		Latitude:          coord.Lat,
		Longitude:         coord.Lng,
		PlaceType:         f.placeType(),
		AddressComponents: f.components(),
		Relevance:         f.Relevance,
	}, nil
}

// components разбирает иерархию context: первое совпадение по категории.
// Если район не найден, а сам результат - locality, район берется из
// первого сегмента place_name. Эвристика, промахи допустимы.
func (f *placeFeature) components() domain.AddressComponents {
	var c domain.AddressComponents

	for _, ctx := range f.Context {
		id := strings.ToLower(ctx.ID)
		switch {
		case strings.Contains(id, "district"):
			if c.District == "" {
				c.District = ctx.Text
			}
		case strings.Contains(id, "region"):
			if c.Region == "" {
				c.Region = ctx.Text
			}
		case strings.Contains(id, "locality"):
			if c.Locality == "" {
				c.Locality = ctx.Text
			}
		case strings.Contains(id, "neighborhood"):
			if c.Neighborhood == "" {
				c.Neighborhood = ctx.Text
			}
		}
	}

	if c.District == "" && f.placeType() == "locality" {
		if first, _, _ := strings.Cut(f.PlaceName, ","); strings.TrimSpace(first) != "" {
			c.District = strings.TrimSpace(first)
		}
	}

	return c
}
