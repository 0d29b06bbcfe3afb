package errors

import (
	"fmt"
)

// AppError - ошибка API: стабильный код, сообщение для клиента и HTTP статус
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is сравнивает по коду, поэтому копии из WithMessage совпадают с исходной ошибкой
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithMessage возвращает копию ошибки с другим сообщением
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// WithField возвращает копию ошибки с параметром запроса, вызвавшим ошибку
func (e *AppError) WithField(field string) *AppError {
	cp := *e
	cp.Details = map[string]interface{}{"field": field}
	return &cp
}
