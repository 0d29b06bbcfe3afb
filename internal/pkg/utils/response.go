package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/room-search-microservice/internal/pkg/errors"
)

// SuccessResponse - конверт успешного ответа
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse - конверт ошибки. RequestID совпадает с заголовком X-Request-ID.
type ErrorResponse struct {
	Error     *errors.AppError `json:"error"`
	RequestID string           `json:"request_id,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(SuccessResponse{Data: data})
}

// SendError отправляет ошибку, переводя доменные ошибки в коды API
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.FromError(err)
	requestID, _ := c.Locals("request_id").(string)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error:     appErr,
		RequestID: requestID,
	})
}
