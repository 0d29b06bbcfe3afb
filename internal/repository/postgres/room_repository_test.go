package postgres

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/room-search-microservice/internal/domain"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBuildSearchQuery_NoFilters(t *testing.T) {
	query, args := buildSearchQuery(&domain.RoomQuery{Limit: domain.MaxSearchResults})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "distance")
	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Contains(t, query, "LIMIT $1")
	assert.Equal(t, []interface{}{100}, args)
}

func TestBuildSearchQuery_BoundingBox(t *testing.T) {
	query, args := buildSearchQuery(&domain.RoomQuery{
		BoundingBox: &domain.BoundingBox{North: 21.1, South: 20.9, East: 105.9, West: 105.7},
		Limit:       100,
	})

	assert.Contains(t, query, "ST_Intersects(location::geometry, ST_MakeEnvelope($1, $2, $3, $4, 4326))")
	assert.Equal(t, []interface{}{105.7, 20.9, 105.9, 21.1, 100}, args)
}

func TestBuildSearchQuery_Radius(t *testing.T) {
	query, args := buildSearchQuery(&domain.RoomQuery{
		Radius: &domain.RadiusQuery{Center: domain.Coordinate{Lat: 21.03, Lng: 105.85}, RadiusMeters: 2000},
		Limit:  100,
	})

	assert.Contains(t, query, "ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)")
	assert.NotContains(t, query, "AS distance")
	assert.Equal(t, []interface{}{105.85, 21.03, 2000.0, 100}, args)
}

func TestBuildSearchQuery_AddressSearch(t *testing.T) {
	center := domain.Coordinate{Lat: 21.0245, Lng: 105.8312}
	patterns := []string{"%Đống Đa%", "%Quận Đống Đa%"}

	query, args := buildSearchQuery(&domain.RoomQuery{
		Radius:          &domain.RadiusQuery{Center: center, RadiusMeters: 5000},
		DistanceFrom:    &center,
		AddressPatterns: patterns,
		Attributes: domain.AttributeFilter{
			MaxPrice: float64Ptr(5000000),
			MinArea:  float64Ptr(15),
			RoomType: domain.RoomTypeStudio,
			Status:   domain.RoomStatusAvailable,
		},
		Limit: 100,
	})

	assert.Contains(t, query, "ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance")
	assert.Contains(t, query, "ST_DWithin(location, ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography, $5)")
	assert.Contains(t, query, "address ILIKE ANY($6)")
	assert.Contains(t, query, "price <= $7::float8")
	assert.Contains(t, query, "area >= $8")
	assert.Contains(t, query, "room_type = $9")
	assert.Contains(t, query, "status = $10")
	assert.Contains(t, query, "ORDER BY distance ASC, id ASC")
	assert.Contains(t, query, "LIMIT $11")
	assert.NotContains(t, query, "price >=")
	assert.NotContains(t, query, "area <=")

	assert.Equal(t, []interface{}{
		105.8312, 21.0245,
		105.8312, 21.0245, 5000.0,
		pq.Array(patterns),
		5000000.0, 15.0, "studio", "available",
		100,
	}, args)
}

func TestBuildSearchQuery_LimitIsCapped(t *testing.T) {
	for _, limit := range []int{0, -1, 500} {
		_, args := buildSearchQuery(&domain.RoomQuery{Limit: limit})
		assert.Equal(t, []interface{}{domain.MaxSearchResults}, args, "limit %d", limit)
	}
}
