package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/usecase"
	"github.com/room-search-microservice/internal/usecase/dto"
)

var testSearchConfig = config.SearchConfig{
	DefaultAddressRadius: 5000,
	DistrictQualifiers:   []string{"Quận"},
}

var dongDaResult = &domain.GeocodeResult{
	Coordinate:        domain.Coordinate{Lat: 21.0245, Lng: 105.8312},
	FormattedAddress:  "Đống Đa, Hà Nội, Vietnam",
	PlaceType:         "locality",
	AddressComponents: domain.AddressComponents{District: "Đống Đa", Region: "Hà Nội"},
}

func TestSpatialFilterBuilder_Address(t *testing.T) {
	ctx := context.Background()

	t.Run("address wins over bbox and radius", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "Đống Đa, Hà Nội", "vn").Return(dongDaResult, nil).Once()
		builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

		query, err := builder.Build(ctx, dto.RoomSearchRequest{
			Address: "  Đống Đa, Hà Nội ",
			Country: "vn",
			North:   float64Ptr(22), South: float64Ptr(20), East: float64Ptr(106), West: float64Ptr(105),
			Lat: float64Ptr(10), Lng: float64Ptr(106), Radius: float64Ptr(1000),
		})
		require.NoError(t, err)

		assert.Nil(t, query.BoundingBox)
		require.NotNil(t, query.Radius)
		assert.Equal(t, dongDaResult.Coordinate, query.Radius.Center)
		assert.Equal(t, 5000.0, query.Radius.RadiusMeters)
		require.NotNil(t, query.DistanceFrom)
		assert.Equal(t, dongDaResult.Coordinate, *query.DistanceFrom)
		assert.Equal(t, []string{"%Đống Đa%", "%Quận Đống Đa%"}, query.AddressPatterns)
		assert.Equal(t, domain.MaxSearchResults, query.Limit)
		geocoder.AssertExpectations(t)
	})

	t.Run("custom address radius", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "Đống Đa", "").Return(dongDaResult, nil)
		builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

		query, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Đống Đa", AddressRadius: float64Ptr(1500)})
		require.NoError(t, err)
		assert.Equal(t, 1500.0, query.Radius.RadiusMeters)
	})

	t.Run("invalid address radius skips geocoding", func(t *testing.T) {
		for _, radius := range []float64{0, -10, 50001, math.NaN()} {
			geocoder := &MockAddressGeocoder{}
			builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

			_, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Đống Đa", AddressRadius: float64Ptr(radius)})
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("address without district has no patterns", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "Hà Nội", "").Return(&domain.GeocodeResult{
			Coordinate: domain.Coordinate{Lat: 21.0285, Lng: 105.8542},
		}, nil)
		builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

		query, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Hà Nội"})
		require.NoError(t, err)
		assert.Empty(t, query.AddressPatterns)
		assert.NotNil(t, query.Radius)
	})

	t.Run("like wildcards in district are escaped", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "odd", "").Return(&domain.GeocodeResult{
			Coordinate:        domain.Coordinate{Lat: 1, Lng: 1},
			AddressComponents: domain.AddressComponents{District: "50%_off"},
		}, nil)
		builder := usecase.NewSpatialFilterBuilder(geocoder, config.SearchConfig{DefaultAddressRadius: 5000})

		query, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "odd"})
		require.NoError(t, err)
		assert.Equal(t, []string{`%50\%\_off%`}, query.AddressPatterns)
	})

	t.Run("address not found", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "Nowhere", "").
			Return(nil, domain.NewGeocodingError(domain.GeocodeErrNotFound, "Address not found: Nowhere", nil))
		builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

		query, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Nowhere"})
		assert.Nil(t, query)
		assert.True(t, domain.IsAddressNotFound(err))
	})

	t.Run("provider failure is propagated", func(t *testing.T) {
		geocoder := &MockAddressGeocoder{}
		geocoder.On("Geocode", mock.Anything, "Hà Nội", "").
			Return(nil, domain.NewGeocodingError(domain.GeocodeErrTimeout, "Mapbox API request timed out", nil))
		builder := usecase.NewSpatialFilterBuilder(geocoder, testSearchConfig)

		_, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Hà Nội"})
		assert.Equal(t, domain.GeocodeErrTimeout, domain.GeocodeKind(err))
	})
}

func TestSpatialFilterBuilder_BoundingBox(t *testing.T) {
	ctx := context.Background()
	builder := usecase.NewSpatialFilterBuilder(&MockAddressGeocoder{}, testSearchConfig)

	t.Run("valid bbox", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{
			North: float64Ptr(21.1), South: float64Ptr(20.9), East: float64Ptr(105.9), West: float64Ptr(105.7),
		})
		require.NoError(t, err)
		require.NotNil(t, query.BoundingBox)
		assert.Equal(t, domain.BoundingBox{North: 21.1, South: 20.9, East: 105.9, West: 105.7}, *query.BoundingBox)
		assert.Nil(t, query.Radius)
		assert.Nil(t, query.DistanceFrom)
	})

	t.Run("bbox wins over radius", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{
			North: float64Ptr(21.1), South: float64Ptr(20.9), East: float64Ptr(105.9), West: float64Ptr(105.7),
			Lat: float64Ptr(21), Lng: float64Ptr(105.8), Radius: float64Ptr(1000),
		})
		require.NoError(t, err)
		assert.NotNil(t, query.BoundingBox)
		assert.Nil(t, query.Radius)
	})

	tests := []struct {
		name                     string
		north, south, east, west float64
		message                  string
	}{
		{"north below south", 20, 21, 106, 105, "Invalid bounding box: north must be > south"},
		{"east below west", 21, 20, 105, 106, "Invalid bounding box: east must be > west"},
		{"equal latitudes", 21, 21, 106, 105, "Invalid bounding box: north must be > south"},
		{"latitude out of range", 91, 20, 106, 105, "Invalid latitude: must be between -90 and 90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := builder.Build(ctx, dto.RoomSearchRequest{
				North: float64Ptr(tt.north), South: float64Ptr(tt.south), East: float64Ptr(tt.east), West: float64Ptr(tt.west),
			})
			assert.Nil(t, query)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}

	t.Run("partial bbox is ignored", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{North: float64Ptr(21.1), South: float64Ptr(20.9)})
		require.NoError(t, err)
		assert.Nil(t, query.BoundingBox)
		assert.Nil(t, query.Radius)
	})
}

func TestSpatialFilterBuilder_Radius(t *testing.T) {
	ctx := context.Background()
	builder := usecase.NewSpatialFilterBuilder(&MockAddressGeocoder{}, testSearchConfig)

	t.Run("valid radius", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{
			Lat: float64Ptr(21.0285), Lng: float64Ptr(105.8542), Radius: float64Ptr(50000),
		})
		require.NoError(t, err)
		require.NotNil(t, query.Radius)
		assert.Equal(t, 50000.0, query.Radius.RadiusMeters)
		assert.Nil(t, query.DistanceFrom)
	})

	tests := []struct {
		name     string
		lat, lng float64
		radius   float64
		message  string
	}{
		{"zero radius", 21, 105, 0, "Invalid radius: must be positive"},
		{"negative radius", 21, 105, -1, "Invalid radius: must be positive"},
		{"radius too large", 21, 105, 50001, "Radius too large: max 50000 meters"},
		{"invalid latitude", 95, 105, 100, "Invalid latitude: must be between -90 and 90"},
		{"invalid longitude", 21, 181, 100, "Invalid longitude: must be between -180 and 180"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := builder.Build(ctx, dto.RoomSearchRequest{
				Lat: float64Ptr(tt.lat), Lng: float64Ptr(tt.lng), Radius: float64Ptr(tt.radius),
			})
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}

	t.Run("missing radius means no geo filter", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{Lat: float64Ptr(21), Lng: float64Ptr(105)})
		require.NoError(t, err)
		assert.Nil(t, query.Radius)
	})
}

func TestSpatialFilterBuilder_Attributes(t *testing.T) {
	ctx := context.Background()
	builder := usecase.NewSpatialFilterBuilder(&MockAddressGeocoder{}, testSearchConfig)

	t.Run("non-positive bounds are dropped", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{
			MinPrice: float64Ptr(0),
			MaxPrice: float64Ptr(3000000),
			MinArea:  float64Ptr(-5),
			RoomType: "studio",
			Status:   "available",
		})
		require.NoError(t, err)

		attrs := query.Attributes
		assert.Nil(t, attrs.MinPrice)
		require.NotNil(t, attrs.MaxPrice)
		assert.Equal(t, 3000000.0, *attrs.MaxPrice)
		assert.Nil(t, attrs.MinArea)
		assert.Nil(t, attrs.MaxArea)
		assert.Equal(t, domain.RoomTypeStudio, attrs.RoomType)
		assert.Equal(t, domain.RoomStatusAvailable, attrs.Status)
	})

	t.Run("status has no default", func(t *testing.T) {
		query, err := builder.Build(ctx, dto.RoomSearchRequest{})
		require.NoError(t, err)
		assert.Empty(t, query.Attributes.Status)
		assert.Equal(t, domain.MaxSearchResults, query.Limit)
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, err := builder.Build(ctx, dto.RoomSearchRequest{RoomType: "villa"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Equal(t, "Invalid room_type: must be one of room, studio, apartment", err.Error())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := builder.Build(ctx, dto.RoomSearchRequest{Status: "sold"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("invalid country", func(t *testing.T) {
		_, err := builder.Build(ctx, dto.RoomSearchRequest{Address: "Hà Nội", Country: "vnm"})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}
