package repository

import (
	"context"

	"github.com/room-search-microservice/internal/domain"
)

// RoomRepository определяет методы для работы с объявлениями о сдаче комнат
type RoomRepository interface {
	// Search выполняет пространственный поиск по дескриптору запроса.
	// Порядок выдачи задается дескриптором, количество ограничено query.Limit.
	Search(ctx context.Context, query *domain.RoomQuery) ([]domain.Room, error)

	// GetByID возвращает комнату по ID или domain.ErrRoomNotFound
	GetByID(ctx context.Context, id int64) (*domain.Room, error)

	// UpdateAddress сохраняет адрес и координаты, полученные геокодированием
	UpdateAddress(ctx context.Context, id int64, address string, coord domain.Coordinate) error

	// Ping проверяет доступность хранилища
	Ping(ctx context.Context) error
}
