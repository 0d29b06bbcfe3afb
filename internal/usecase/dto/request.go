package dto

// RoomSearchRequest - фильтры поиска комнат из query параметров.
// Числовые параметры - указатели: nil означает "параметр не передан".
type RoomSearchRequest struct {
	// Поиск по адресу (высший приоритет)
	Address       string   `query:"address"`
	AddressRadius *float64 `query:"address_radius"` // meters
	Country       string   `query:"country" validate:"omitempty,len=2,alpha"`

	// Bounding box (все четыре стороны)
	North *float64 `query:"north"`
	South *float64 `query:"south"`
	East  *float64 `query:"east"`
	West  *float64 `query:"west"`

	// Радиус вокруг точки
	Lat    *float64 `query:"lat"`
	Lng    *float64 `query:"lng"`
	Radius *float64 `query:"radius"` // meters

	// Атрибуты
	MinPrice *float64 `query:"min_price"`
	MaxPrice *float64 `query:"max_price"`
	MinArea  *float64 `query:"min_area"`
	MaxArea  *float64 `query:"max_area"`
	RoomType string   `query:"room_type" validate:"omitempty,oneof=room studio apartment"`
	Status   string   `query:"status" validate:"omitempty,oneof=available rented"`
}

// HasBoundingBox - переданы все четыре стороны
func (r *RoomSearchRequest) HasBoundingBox() bool {
	return r.North != nil && r.South != nil && r.East != nil && r.West != nil
}

// HasRadius - переданы центр и радиус
func (r *RoomSearchRequest) HasRadius() bool {
	return r.Lat != nil && r.Lng != nil && r.Radius != nil
}

// SuggestRequest - запрос подсказок адреса
type SuggestRequest struct {
	Query   string `query:"q" validate:"required"`
	Country string `query:"country" validate:"omitempty,len=2,alpha"`
	Limit   int    `query:"limit"`
}

// GeocodeRequest - прямое геокодирование
type GeocodeRequest struct {
	Address string `query:"address" validate:"required"`
	Country string `query:"country" validate:"omitempty,len=2,alpha"`
}

// ReverseGeocodeRequest - обратное геокодирование
type ReverseGeocodeRequest struct {
	Lat     float64 `query:"lat"`
	Lng     float64 `query:"lng"`
	Country string  `query:"country" validate:"omitempty,len=2,alpha"`
}
