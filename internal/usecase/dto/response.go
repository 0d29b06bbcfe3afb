package dto

import (
	"time"

	"github.com/room-search-microservice/internal/domain"
)

// SuggestResponse - подсказки адреса
type SuggestResponse struct {
	Query       string                          `json:"query"`
	Suggestions []domain.AutocompleteSuggestion `json:"suggestions"`
}

// RoomImageResponse - случайное изображение для типа комнаты
type RoomImageResponse struct {
	ImageURL  string    `json:"image_url"`
	RoomType  *string   `json:"room_type"`
	Timestamp time.Time `json:"timestamp"`
}

// RoomImagesResponse - каталог изображений по типам
type RoomImagesResponse struct {
	ImagesByType map[string][]string `json:"images_by_type"`
	Default      []string            `json:"default"`
}

// HealthResponse - состояние зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Duration string            `json:"duration"`
}
