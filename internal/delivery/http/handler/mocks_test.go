package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/usecase/dto"
)

type mockRoomSearcher struct {
	mock.Mock
}

func (m *mockRoomSearcher) Search(ctx context.Context, req dto.RoomSearchRequest) (*domain.FeatureCollection, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeatureCollection), args.Error(1)
}

func (m *mockRoomSearcher) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feature), args.Error(1)
}

type mockAddressGeocoder struct {
	mock.Mock
}

func (m *mockAddressGeocoder) Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *mockAddressGeocoder) ReverseGeocode(ctx context.Context, coord *domain.Coordinate, country string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, coord, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *mockAddressGeocoder) Autocomplete(ctx context.Context, query, country string, limit int) []domain.AutocompleteSuggestion {
	args := m.Called(ctx, query, country, limit)
	return args.Get(0).([]domain.AutocompleteSuggestion)
}

type stubCatalog struct {
	byType map[string][]string
	def    []string
}

func (s *stubCatalog) RandomImage(roomType string) string {
	if imgs := s.byType[roomType]; len(imgs) > 0 {
		return imgs[0]
	}
	return s.def[0]
}

func (s *stubCatalog) ImagesByType() map[string][]string { return s.byType }

func (s *stubCatalog) DefaultImages() []string { return s.def }
