package domain

import (
	"math"
	"regexp"
	"time"
)

type RoomType string

const (
	RoomTypeRoom      RoomType = "room"
	RoomTypeStudio    RoomType = "studio"
	RoomTypeApartment RoomType = "apartment"
)

// RoomTypes - допустимые типы комнат в порядке каталога
var RoomTypes = []RoomType{RoomTypeRoom, RoomTypeStudio, RoomTypeApartment}

func (t RoomType) Valid() bool {
	for _, rt := range RoomTypes {
		if rt == t {
			return true
		}
	}
	return false
}

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusRented    RoomStatus = "rented"
)

func (s RoomStatus) Valid() bool {
	return s == RoomStatusAvailable || s == RoomStatusRented
}

// Room - объявление о сдаче комнаты. Сущностью владеет хранилище, здесь она только читается.
type Room struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Price       int64     `db:"price"`
	Area        *float64  `db:"area"`
	Address     *string   `db:"address"`
	Latitude    float64   `db:"latitude"`
	Longitude   float64   `db:"longitude"`
	RoomType    *string   `db:"room_type"`
	Status      string    `db:"status"`
	Description *string   `db:"description"`
	Phone       *string   `db:"phone"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	// Distance заполняется только при поиске по адресу (метры)
	Distance *float64 `db:"distance"`
}

var phonePattern = regexp.MustCompile(`(\d{2,4})(\d{4})(\d{4})`)

// PhoneFormatted форматирует номер как (024) 1234-5678
func (r *Room) PhoneFormatted() *string {
	if r.Phone == nil || *r.Phone == "" {
		return nil
	}
	formatted := phonePattern.ReplaceAllString(*r.Phone, "($1) $2-$3")
	return &formatted
}

// ToFeature конвертирует комнату в GeoJSON Feature (координаты в порядке [lng, lat])
func (r *Room) ToFeature() Feature {
	props := map[string]interface{}{
		"id":             r.ID,
		"title":          r.Title,
		"price":          r.Price,
		"area":           r.Area,
		"address":        r.Address,
		"roomType":       r.RoomType,
		"status":         r.Status,
		"description":    r.Description,
		"phone":          r.Phone,
		"phoneFormatted": r.PhoneFormatted(),
	}

	if r.Distance != nil {
		props["distance"] = int64(math.Round(*r.Distance))
	}

	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{r.Longitude, r.Latitude},
		},
		Properties: props,
	}
}

// PointGeometry - GeoJSON Point
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// Feature - GeoJSON Feature
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   PointGeometry          `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// FeatureCollection - упорядоченный набор Feature
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func NewFeatureCollection(rooms []Room) *FeatureCollection {
	features := make([]Feature, 0, len(rooms))
	for i := range rooms {
		features = append(features, rooms[i].ToFeature())
	}
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
