package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/pkg/utils"
	"github.com/room-search-microservice/internal/usecase/dto"
)

// RoomSearcher - поиск комнат
type RoomSearcher interface {
	Search(ctx context.Context, req dto.RoomSearchRequest) (*domain.FeatureCollection, error)
	GetByID(ctx context.Context, id int64) (*domain.Feature, error)
}

// RoomHandler - обработчик поиска комнат
type RoomHandler struct {
	rooms  RoomSearcher
	logger *zap.Logger
}

// NewRoomHandler - создание нового RoomHandler
func NewRoomHandler(rooms RoomSearcher, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		rooms:  rooms,
		logger: logger,
	}
}

// Search godoc
// @Summary Поиск комнат
// @Description Возвращает комнаты в виде GeoJSON FeatureCollection. Гео-фильтр выбирается по приоритету: адрес, bounding box (north/south/east/west), радиус (lat/lng/radius). При поиске по адресу выдача отсортирована по расстоянию. Не более 100 результатов.
// @Tags Rooms
// @Produce json
// @Param address query string false "Адрес для геокодирования"
// @Param address_radius query number false "Радиус вокруг адреса в метрах" default(5000)
// @Param country query string false "Код страны ISO 3166-1 alpha-2" default(vn)
// @Param north query number false "Северная граница"
// @Param south query number false "Южная граница"
// @Param east query number false "Восточная граница"
// @Param west query number false "Западная граница"
// @Param lat query number false "Широта центра"
// @Param lng query number false "Долгота центра"
// @Param radius query number false "Радиус в метрах (до 50000)"
// @Param min_price query number false "Минимальная цена"
// @Param max_price query number false "Максимальная цена"
// @Param min_area query number false "Минимальная площадь"
// @Param max_area query number false "Максимальная площадь"
// @Param room_type query string false "Тип комнаты" Enums(room, studio, apartment)
// @Param status query string false "Статус" Enums(available, rented)
// @Success 200 {object} domain.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/rooms [get]
func (h *RoomHandler) Search(c *fiber.Ctx) error {
	req := dto.RoomSearchRequest{
		Address:  c.Query("address"),
		Country:  c.Query("country"),
		RoomType: c.Query("room_type"),
		Status:   c.Query("status"),
	}

	err := utils.QueryFloats(c,
		utils.FloatParam{Name: "address_radius", Dst: &req.AddressRadius},
		utils.FloatParam{Name: "north", Dst: &req.North},
		utils.FloatParam{Name: "south", Dst: &req.South},
		utils.FloatParam{Name: "east", Dst: &req.East},
		utils.FloatParam{Name: "west", Dst: &req.West},
		utils.FloatParam{Name: "lat", Dst: &req.Lat},
		utils.FloatParam{Name: "lng", Dst: &req.Lng},
		utils.FloatParam{Name: "radius", Dst: &req.Radius},
		utils.FloatParam{Name: "min_price", Dst: &req.MinPrice},
		utils.FloatParam{Name: "max_price", Dst: &req.MaxPrice},
		utils.FloatParam{Name: "min_area", Dst: &req.MinArea},
		utils.FloatParam{Name: "max_area", Dst: &req.MaxArea},
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rooms.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}

// GetByID godoc
// @Summary Комната по ID
// @Description Возвращает одну комнату как GeoJSON Feature
// @Tags Rooms
// @Produce json
// @Param id path int true "ID комнаты"
// @Success 200 {object} domain.Feature
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.SendError(c, domain.ErrRoomNotFound)
	}

	feature, err := h.rooms.GetByID(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(feature)
}
