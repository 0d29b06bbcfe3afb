package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/room-search-microservice/internal/domain"
)

type sample struct {
	RoomType string `query:"room_type" validate:"omitempty,oneof=room studio apartment"`
	Limit    int    `json:"limit" validate:"min=1,max=10"`
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(sample{RoomType: "studio", Limit: 5}))
		assert.NoError(t, Validate(sample{Limit: 1}))
	})

	t.Run("oneof uses parameter name", func(t *testing.T) {
		err := Validate(sample{RoomType: "villa", Limit: 5})
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "room_type", verr.Field)
		assert.Equal(t, "Invalid room_type: must be one of room, studio, apartment", verr.Message)
	})

	t.Run("max", func(t *testing.T) {
		err := Validate(sample{Limit: 11})
		require.Error(t, err)
		assert.Equal(t, "Invalid limit: must be at most 10", err.Error())
	})
}
