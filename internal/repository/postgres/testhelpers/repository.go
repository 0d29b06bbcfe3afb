package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain/repository"
	"github.com/room-search-microservice/internal/repository/postgres"
)

// NewRoomRepositoryForTest creates a room repository with test database and logger
func NewRoomRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RoomRepository {
	return postgres.NewRoomRepository(postgres.NewDBForTest(db, logger))
}
