package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RoomFixture - строка таблицы rooms для тестов
type RoomFixture struct {
	Title     string   `db:"title"`
	Price     int64    `db:"price"`
	Area      *float64 `db:"area"`
	Address   *string  `db:"address"`
	Latitude  float64  `db:"latitude"`
	Longitude float64  `db:"longitude"`
	RoomType  *string  `db:"room_type"`
	Status    string   `db:"status"`
	Phone     *string  `db:"phone"`
}

// InsertRooms вставляет комнаты и возвращает их ID в порядке вставки
func InsertRooms(ctx context.Context, db *sqlx.DB, rooms []RoomFixture) ([]int64, error) {
	query := `
		INSERT INTO rooms (title, price, area, address, latitude, longitude, room_type, status, phone)
		VALUES (:title, :price, :area, :address, :latitude, :longitude, :room_type, :status, :phone)
		RETURNING id
	`

	ids := make([]int64, 0, len(rooms))
	for _, room := range rooms {
		rows, err := db.NamedQueryContext(ctx, query, room)
		if err != nil {
			return nil, err
		}
		var id int64
		if rows.Next() {
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, err
			}
		}
		rows.Close()
		ids = append(ids, id)
	}
	return ids, nil
}
