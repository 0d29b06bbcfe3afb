package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/room-search-microservice/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockGeocodingProvider is a mock of GeocodingProvider
type MockGeocodingProvider struct {
	mock.Mock
}

func (m *MockGeocodingProvider) Forward(ctx context.Context, address, country string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockGeocodingProvider) Reverse(ctx context.Context, coord domain.Coordinate, country string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, coord, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockGeocodingProvider) Suggest(ctx context.Context, query, country string, limit int) ([]domain.AutocompleteSuggestion, error) {
	args := m.Called(ctx, query, country, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AutocompleteSuggestion), args.Error(1)
}

// MockAddressGeocoder is a mock of AddressGeocoder
type MockAddressGeocoder struct {
	mock.Mock
}

func (m *MockAddressGeocoder) Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockRoomRepository is a mock of RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Search(ctx context.Context, query *domain.RoomQuery) ([]domain.Room, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) UpdateAddress(ctx context.Context, id int64, address string, coord domain.Coordinate) error {
	args := m.Called(ctx, id, address, coord)
	return args.Error(0)
}

func (m *MockRoomRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeClock - управляемые часы для проверки TTL
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func float64Ptr(v float64) *float64 {
	return &v
}
