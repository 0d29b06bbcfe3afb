package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr string
	}{
		{"hanoi", 21.0285, 105.8542, ""},
		{"poles and antimeridian", 90, -180, ""},
		{"latitude too high", 90.0001, 0, "Invalid latitude: must be between -90 and 90"},
		{"latitude too low", -91, 0, "Invalid latitude: must be between -90 and 90"},
		{"longitude out of range", 0, 180.5, "Invalid longitude: must be between -180 and 180"},
		{"NaN latitude", math.NaN(), 0, "Invalid latitude: must be between -90 and 90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.lat, tt.lng)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.lat, c.Lat)
				assert.Equal(t, tt.lng, c.Lng)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestNewBoundingBox(t *testing.T) {
	tests := []struct {
		name                     string
		north, south, east, west float64
		wantErr                  string
	}{
		{"valid hanoi box", 21.1, 20.9, 106.0, 105.7, ""},
		{"north equals south", 21, 21, 106, 105, "Invalid bounding box: north must be > south"},
		{"north below south", 20, 21, 106, 105, "Invalid bounding box: north must be > south"},
		{"east equals west", 21.1, 20.9, 105, 105, "Invalid bounding box: east must be > west"},
		{"shape checked before range", 95, 96, 200, 190, "Invalid bounding box: north must be > south"},
		{"north out of range", 91, 20, 106, 105, "Invalid latitude: must be between -90 and 90"},
		{"west out of range", 21, 20, 106, -181, "Invalid longitude: must be between -180 and 180"},
		{"NaN north", math.NaN(), 20, 106, 105, "Invalid bounding box: north must be > south"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bbox, err := NewBoundingBox(tt.north, tt.south, tt.east, tt.west)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, BoundingBox{North: tt.north, South: tt.south, East: tt.east, West: tt.west}, bbox)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestNewRadiusQuery(t *testing.T) {
	center, err := NewCoordinate(21.03, 105.85)
	require.NoError(t, err)

	tests := []struct {
		name    string
		radius  float64
		wantErr string
	}{
		{"smallest positive", 0.001, ""},
		{"typical", 2000, ""},
		{"exactly max", 50000, ""},
		{"zero", 0, "Invalid radius: must be positive"},
		{"negative", -5, "Invalid radius: must be positive"},
		{"above max", 50000.1, "Radius too large: max 50000 meters"},
		{"infinite", math.Inf(1), "Radius too large: max 50000 meters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq, err := NewRadiusQuery(center, tt.radius)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.radius, rq.RadiusMeters)
				assert.Equal(t, center, rq.Center)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestAttributeFilter_Normalize(t *testing.T) {
	zero, negative, price, area := 0.0, -1.0, 2000000.0, 25.5

	f := AttributeFilter{
		MinPrice: &price,
		MaxPrice: &zero,
		MinArea:  &negative,
		MaxArea:  &area,
		RoomType: RoomTypeStudio,
	}.Normalize()

	require.NotNil(t, f.MinPrice)
	assert.Equal(t, price, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinArea)
	require.NotNil(t, f.MaxArea)
	assert.Equal(t, area, *f.MaxArea)
	assert.Equal(t, RoomTypeStudio, f.RoomType)
	assert.Empty(t, f.Status)
}
