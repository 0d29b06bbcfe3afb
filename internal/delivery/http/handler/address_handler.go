package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/pkg/errors"
	"github.com/room-search-microservice/internal/pkg/utils"
	"github.com/room-search-microservice/internal/pkg/validator"
	"github.com/room-search-microservice/internal/usecase/dto"
)

// Лимиты подсказок
const (
	DefaultSuggestLimit = 5
	MaxSuggestLimit     = 10
)

// AddressGeocoder - операции шлюза геокодирования для API
type AddressGeocoder interface {
	Geocode(ctx context.Context, address, country string) (*domain.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, coord *domain.Coordinate, country string) (*domain.GeocodeResult, error)
	Autocomplete(ctx context.Context, query, country string, limit int) []domain.AutocompleteSuggestion
}

// AddressHandler - подсказки адреса и геокодирование
type AddressHandler struct {
	geocoder AddressGeocoder
	logger   *zap.Logger
}

// NewAddressHandler - создание нового AddressHandler
func NewAddressHandler(geocoder AddressGeocoder, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Suggest godoc
// @Summary Подсказки адреса
// @Description Автодополнение адреса через Mapbox. Сбой провайдера возвращает пустой список, а не ошибку.
// @Tags Addresses
// @Produce json
// @Param q query string true "Часть адреса (можно передать как query)"
// @Param country query string false "Код страны" default(vn)
// @Param limit query int false "Количество подсказок (максимум 10)" default(5)
// @Success 200 {object} dto.SuggestResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/addresses/suggest [get]
func (h *AddressHandler) Suggest(c *fiber.Ctx) error {
	req := dto.SuggestRequest{
		Query:   utils.QueryString(c, "q", "query"),
		Country: c.Query("country"),
		Limit:   c.QueryInt("limit", DefaultSuggestLimit),
	}
	if req.Query == "" {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Query parameter 'q' or 'query' is required"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	switch {
	case req.Limit < 1:
		req.Limit = 1
	case req.Limit > MaxSuggestLimit:
		req.Limit = MaxSuggestLimit
	}

	suggestions := h.geocoder.Autocomplete(c.UserContext(), req.Query, req.Country, req.Limit)

	return c.JSON(dto.SuggestResponse{
		Query:       req.Query,
		Suggestions: suggestions,
	})
}

// Geocode godoc
// @Summary Прямое геокодирование
// @Description Разрешает адрес в координаты и компоненты адреса. Результаты кешируются.
// @Tags Addresses
// @Produce json
// @Param address query string true "Адрес"
// @Param country query string false "Код страны" default(vn)
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/geocode [get]
func (h *AddressHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{
		Address: utils.QueryString(c, "address"),
		Country: c.Query("country"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoder.Geocode(c.UserContext(), req.Address, req.Country)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Description Определяет адрес по координатам (ближайший адрес или POI)
// @Tags Addresses
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Param country query string false "Код страны" default(vn)
// @Success 200 {object} utils.SuccessResponse{data=domain.GeocodeResult}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/reverse-geocode [get]
func (h *AddressHandler) ReverseGeocode(c *fiber.Ctx) error {
	req := dto.ReverseGeocodeRequest{Country: c.Query("country")}

	var lat, lng *float64
	if err := utils.QueryFloats(c,
		utils.FloatParam{Name: "lat", Dst: &lat},
		utils.FloatParam{Name: "lng", Dst: &lng},
	); err != nil {
		return utils.SendError(c, err)
	}
	if lat == nil || lng == nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Query parameters 'lat' and 'lng' are required"))
	}
	req.Lat, req.Lng = *lat, *lng

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}
	coord, err := domain.NewCoordinate(req.Lat, req.Lng)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.geocoder.ReverseGeocode(c.UserContext(), &coord, req.Country)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}
