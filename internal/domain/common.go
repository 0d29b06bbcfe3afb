package domain

import "fmt"

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// MaxRadiusMeters - верхняя граница радиуса поиска
	MaxRadiusMeters = 50000.0
)

// Coordinate - точка в WGS84. Создаётся только через NewCoordinate.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// NewCoordinate проверяет диапазоны широты и долготы (NaN отклоняется)
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	if !(lat >= MinLatitude && lat <= MaxLatitude) {
		return Coordinate{}, NewValidationError("lat", "Invalid latitude: must be between -90 and 90")
	}
	if !(lng >= MinLongitude && lng <= MaxLongitude) {
		return Coordinate{}, NewValidationError("lng", "Invalid longitude: must be between -180 and 180")
	}
	return Coordinate{Lat: lat, Lng: lng}, nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// BoundingBox - прямоугольная область north/south/east/west
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// NewBoundingBox валидирует форму области. Некорректная область никогда не исправляется.
func NewBoundingBox(north, south, east, west float64) (BoundingBox, error) {
	if !(north > south) {
		return BoundingBox{}, NewValidationError("north", "Invalid bounding box: north must be > south")
	}
	if !(east > west) {
		return BoundingBox{}, NewValidationError("east", "Invalid bounding box: east must be > west")
	}
	if north > MaxLatitude || south < MinLatitude {
		return BoundingBox{}, NewValidationError("north", "Invalid latitude: must be between -90 and 90")
	}
	if east > MaxLongitude || west < MinLongitude {
		return BoundingBox{}, NewValidationError("east", "Invalid longitude: must be between -180 and 180")
	}
	return BoundingBox{North: north, South: south, East: east, West: west}, nil
}

// RadiusQuery - все точки в пределах RadiusMeters от Center
type RadiusQuery struct {
	Center       Coordinate `json:"center"`
	RadiusMeters float64    `json:"radius_meters"`
}

// NewRadiusQuery проверяет 0 < radius <= MaxRadiusMeters
func NewRadiusQuery(center Coordinate, radiusMeters float64) (RadiusQuery, error) {
	if !(radiusMeters > 0) {
		return RadiusQuery{}, NewValidationError("radius", "Invalid radius: must be positive")
	}
	if radiusMeters > MaxRadiusMeters {
		return RadiusQuery{}, NewValidationError("radius", "Radius too large: max 50000 meters")
	}
	return RadiusQuery{Center: center, RadiusMeters: radiusMeters}, nil
}
