package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
	"github.com/room-search-microservice/internal/usecase/dto"
)

// QueryBuilder строит дескриптор запроса из фильтров
type QueryBuilder interface {
	Build(ctx context.Context, req dto.RoomSearchRequest) (*domain.RoomQuery, error)
}

// RoomUseCase - поиск комнат: геокодирование адреса, сборка фильтра, запрос к хранилищу
type RoomUseCase struct {
	roomRepo repository.RoomRepository
	builder  QueryBuilder
	logger   *zap.Logger
}

// NewRoomUseCase создает новый RoomUseCase
func NewRoomUseCase(roomRepo repository.RoomRepository, builder QueryBuilder, logger *zap.Logger) *RoomUseCase {
	return &RoomUseCase{
		roomRepo: roomRepo,
		builder:  builder,
		logger:   logger,
	}
}

// Search возвращает комнаты в виде GeoJSON FeatureCollection.
// При поиске по адресу выдача отсортирована по расстоянию, размер не больше MaxSearchResults.
func (uc *RoomUseCase) Search(ctx context.Context, req dto.RoomSearchRequest) (*domain.FeatureCollection, error) {
	start := time.Now()

	query, err := uc.builder.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.roomRepo.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to search rooms", zap.Error(err))
		return nil, fmt.Errorf("search rooms: %w", err)
	}

	limit := query.Limit
	if limit <= 0 || limit > domain.MaxSearchResults {
		limit = domain.MaxSearchResults
	}
	if len(rooms) > limit {
		rooms = rooms[:limit]
	}

	uc.logger.Debug("Rooms search completed",
		zap.Int("count", len(rooms)),
		zap.Bool("by_address", query.DistanceFrom != nil),
		zap.Bool("by_bbox", query.BoundingBox != nil),
		zap.Bool("by_radius", query.Radius != nil),
		zap.Duration("duration", time.Since(start)))

	return domain.NewFeatureCollection(rooms), nil
}

// GetByID возвращает одну комнату как Feature или domain.ErrRoomNotFound
func (uc *RoomUseCase) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	room, err := uc.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	feature := room.ToFeature()
	return &feature, nil
}
