package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/room-search-microservice/internal/pkg/utils"
	"github.com/room-search-microservice/internal/usecase/dto"
)

// RoomImageCatalog - каталог изображений комнат
type RoomImageCatalog interface {
	RandomImage(roomType string) string
	ImagesByType() map[string][]string
	DefaultImages() []string
}

// RoomImageHandler - изображения для карточек комнат
type RoomImageHandler struct {
	catalog RoomImageCatalog
	now     func() time.Time
}

// NewRoomImageHandler - создание нового RoomImageHandler
func NewRoomImageHandler(catalog RoomImageCatalog) *RoomImageHandler {
	return &RoomImageHandler{
		catalog: catalog,
		now:     time.Now,
	}
}

// Random godoc
// @Summary Случайное изображение комнаты
// @Description Возвращает случайное изображение для типа комнаты. Для неизвестного типа выбирает из всех изображений.
// @Tags RoomImages
// @Produce json
// @Param type query string false "Тип комнаты (можно передать как room_type)" Enums(room, studio, apartment)
// @Success 200 {object} dto.RoomImageResponse
// @Router /api/v1/room-images/random [get]
func (h *RoomImageHandler) Random(c *fiber.Ctx) error {
	var roomType *string
	if t := utils.QueryString(c, "type", "room_type"); t != "" {
		roomType = &t
	}

	var key string
	if roomType != nil {
		key = *roomType
	}

	return c.JSON(dto.RoomImageResponse{
		ImageURL:  h.catalog.RandomImage(key),
		RoomType:  roomType,
		Timestamp: h.now().UTC().Truncate(time.Second),
	})
}

// List godoc
// @Summary Каталог изображений
// @Description Все изображения по типам комнат и изображения по умолчанию
// @Tags RoomImages
// @Produce json
// @Success 200 {object} dto.RoomImagesResponse
// @Router /api/v1/room-images [get]
func (h *RoomImageHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.RoomImagesResponse{
		ImagesByType: h.catalog.ImagesByType(),
		Default:      h.catalog.DefaultImages(),
	})
}
