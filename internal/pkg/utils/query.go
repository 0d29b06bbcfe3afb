package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/room-search-microservice/internal/domain"
)

// QueryFloat читает необязательный числовой query параметр.
// Отсутствующее или пустое значение - nil.
func QueryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, fmt.Sprintf("invalid value for %s: %q", name, raw))
	}
	return &v, nil
}

// FloatParam связывает имя query параметра с полем назначения
type FloatParam struct {
	Name string
	Dst  **float64
}

// QueryFloats читает параметры по порядку, останавливаясь на первой ошибке
func QueryFloats(c *fiber.Ctx, params ...FloatParam) error {
	for _, p := range params {
		v, err := QueryFloat(c, p.Name)
		if err != nil {
			return err
		}
		*p.Dst = v
	}
	return nil
}

// QueryString возвращает первый непустой параметр из перечисленных
func QueryString(c *fiber.Ctx, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.Query(name)); v != "" {
			return v
		}
	}
	return ""
}
