package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
)

const roomColumns = `id, title, price, area, address, latitude, longitude,
	room_type, status, description, phone, created_at, updated_at`

type roomRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewRoomRepository создает новый экземпляр RoomRepository
func NewRoomRepository(db *DB) repository.RoomRepository {
	return &roomRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Search выполняет поиск комнат по дескриптору запроса
func (r *roomRepository) Search(ctx context.Context, query *domain.RoomQuery) ([]domain.Room, error) {
	sqlQuery, args := buildSearchQuery(query)

	rooms := []domain.Room{}
	if err := r.db.SelectContext(ctx, &rooms, sqlQuery, args...); err != nil {
		r.logger.Error("Failed to search rooms", zap.Error(err))
		return nil, fmt.Errorf("select rooms: %w", err)
	}

	return rooms, nil
}

// GetByID возвращает комнату по ID
func (r *roomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room domain.Room
	err := r.db.GetContext(ctx, &room, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get room by ID", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("get room %d: %w", id, err)
	}

	return &room, nil
}

// UpdateAddress сохраняет адрес и координаты комнаты
func (r *roomRepository) UpdateAddress(ctx context.Context, id int64, address string, coord domain.Coordinate) error {
	query := `
		UPDATE rooms
		SET address = $2, latitude = $3, longitude = $4, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query, id, address, coord.Lat, coord.Lng)
	if err != nil {
		r.logger.Error("Failed to update room address", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("update room %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update room %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

func (r *roomRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// buildSearchQuery собирает SELECT по дескриптору. Все значения передаются
// параметрами, в текст запроса попадают только имена колонок.
func buildSearchQuery(q *domain.RoomQuery) (string, []interface{}) {
	var (
		sb         strings.Builder
		args       []interface{}
		conditions []string
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString("SELECT ")
	sb.WriteString(roomColumns)
	if q.DistanceFrom != nil {
		fmt.Fprintf(&sb, ",\n\tST_Distance(location, ST_SetSRID(ST_MakePoint(%s, %s), %d)::geography) AS distance",
			arg(q.DistanceFrom.Lng), arg(q.DistanceFrom.Lat), SRID4326)
	}
	sb.WriteString("\nFROM rooms")

	if bbox := q.BoundingBox; bbox != nil {
		conditions = append(conditions, fmt.Sprintf(
			"ST_Intersects(location::geometry, ST_MakeEnvelope(%s, %s, %s, %s, %d))",
			arg(bbox.West), arg(bbox.South), arg(bbox.East), arg(bbox.North), SRID4326))
	}

	if rq := q.Radius; rq != nil {
		conditions = append(conditions, fmt.Sprintf(
			"ST_DWithin(location, ST_SetSRID(ST_MakePoint(%s, %s), %d)::geography, %s)",
			arg(rq.Center.Lng), arg(rq.Center.Lat), SRID4326, arg(rq.RadiusMeters)))
	}

	if len(q.AddressPatterns) > 0 {
		conditions = append(conditions, fmt.Sprintf("address ILIKE ANY(%s)", arg(pq.Array(q.AddressPatterns))))
	}

	attrs := q.Attributes
	if attrs.MinPrice != nil {
		conditions = append(conditions, "price >= "+arg(*attrs.MinPrice)+"::float8")
	}
	if attrs.MaxPrice != nil {
		conditions = append(conditions, "price <= "+arg(*attrs.MaxPrice)+"::float8")
	}
	if attrs.MinArea != nil {
		conditions = append(conditions, "area >= "+arg(*attrs.MinArea))
	}
	if attrs.MaxArea != nil {
		conditions = append(conditions, "area <= "+arg(*attrs.MaxArea))
	}
	if attrs.RoomType != "" {
		conditions = append(conditions, "room_type = "+arg(string(attrs.RoomType)))
	}
	if attrs.Status != "" {
		conditions = append(conditions, "status = "+arg(string(attrs.Status)))
	}

	if len(conditions) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conditions, "\n  AND "))
	}

	if q.DistanceFrom != nil {
		sb.WriteString("\nORDER BY distance ASC, id ASC")
	} else {
		sb.WriteString("\nORDER BY id ASC")
	}

	limit := q.Limit
	if limit <= 0 || limit > domain.MaxSearchResults {
		limit = domain.MaxSearchResults
	}
	sb.WriteString("\nLIMIT " + arg(limit))

	return sb.String(), args
}
