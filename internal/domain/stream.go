package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с сервисом объявлений)
const (
	StreamRoomGeocode  = "stream:room:geocode"
	StreamRoomGeocoded = "stream:room:geocoded"
)

// RoomGeocodeEvent - входящее событие на геокодирование объявления
type RoomGeocodeEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	RoomID    int64     `json:"room_id"`
	Country   string    `json:"country,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// HasCoordinates проверяет наличие обеих координат
func (e *RoomGeocodeEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// HasAddress проверяет наличие непустого адреса
func (e *RoomGeocodeEvent) HasAddress() bool {
	return e.Address != nil && *e.Address != ""
}

// RoomGeocodedEvent - результат геокодирования
type RoomGeocodedEvent struct {
	EventID          uuid.UUID          `json:"event_id"`
	RoomID           int64              `json:"room_id"`
	Latitude         *float64           `json:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty"`
	FormattedAddress string             `json:"formatted_address,omitempty"`
	Components       *AddressComponents `json:"address_components,omitempty"`
	AddressUpdated   bool               `json:"address_updated"`
	Error            string             `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
