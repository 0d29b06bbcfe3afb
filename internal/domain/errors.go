package domain

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound - комната с указанным ID не существует
var ErrRoomNotFound = errors.New("room not found")

// ValidationError - некорректный фильтр или значение от клиента
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GeocodeErrorKind - тип сбоя геокодирования. Вызывающий код ветвится по нему:
// autocomplete глушит все виды, поиск пробрасывает их наружу.
type GeocodeErrorKind string

const (
	GeocodeErrConfig    GeocodeErrorKind = "config"
	GeocodeErrNotFound  GeocodeErrorKind = "not_found"
	GeocodeErrAuth      GeocodeErrorKind = "auth"
	GeocodeErrRateLimit GeocodeErrorKind = "rate_limit"
	GeocodeErrProvider  GeocodeErrorKind = "provider"
	GeocodeErrTimeout   GeocodeErrorKind = "timeout"
	GeocodeErrParse     GeocodeErrorKind = "parse"
)

// GeocodingError - ошибка внешнего провайдера геокодирования
type GeocodingError struct {
	Kind    GeocodeErrorKind
	Message string
	Err     error
}

func NewGeocodingError(kind GeocodeErrorKind, message string, err error) *GeocodingError {
	return &GeocodingError{Kind: kind, Message: message, Err: err}
}

func (e *GeocodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocoding %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("geocoding %s: %s", e.Kind, e.Message)
}

func (e *GeocodingError) Unwrap() error {
	return e.Err
}

// ErrMissingAccessToken возвращается при старте, если токен провайдера не задан
var ErrMissingAccessToken = NewGeocodingError(GeocodeErrConfig, "MAPBOX_ACCESS_TOKEN is not set", nil)

// GeocodeKind возвращает тип ошибки геокодирования или пустую строку
func GeocodeKind(err error) GeocodeErrorKind {
	var gerr *GeocodingError
	if errors.As(err, &gerr) {
		return gerr.Kind
	}
	return ""
}

// IsAddressNotFound - провайдер не нашёл ни одного совпадения
func IsAddressNotFound(err error) bool {
	return GeocodeKind(err) == GeocodeErrNotFound
}

// IsValidationError проверяет, что ошибка вызвана некорректным вводом
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
