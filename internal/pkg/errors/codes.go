package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/room-search-microservice/internal/domain"
)

var (
	ErrInvalidFilter = New(
		"INVALID_FILTER",
		"Invalid search filter",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Address not found",
		http.StatusBadRequest,
	)

	ErrGeocodingTimeout = New(
		"GEOCODING_TIMEOUT",
		"Geocoding provider timed out",
		http.StatusGatewayTimeout,
	)

	ErrGeocodingRateLimited = New(
		"GEOCODING_RATE_LIMITED",
		"Geocoding provider rate limit exceeded",
		http.StatusServiceUnavailable,
	)

	ErrGeocodingProvider = New(
		"GEOCODING_PROVIDER_ERROR",
		"Geocoding provider unavailable",
		http.StatusBadGateway,
	)

	ErrGeocodingMisconfigured = New(
		"GEOCODING_MISCONFIGURED",
		"Geocoding is not configured",
		http.StatusInternalServerError,
	)

	ErrRoomNotFound = New(
		"ROOM_NOT_FOUND",
		"Room not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Service dependencies are unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// FromError переводит доменную ошибку в AppError.
// Текст ошибок провайдера наружу не попадает, только классификация.
func FromError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var verr *domain.ValidationError
	if stderrors.As(err, &verr) {
		return ErrInvalidFilter.WithMessage(verr.Message).WithField(verr.Field)
	}

	if stderrors.Is(err, domain.ErrRoomNotFound) {
		return ErrRoomNotFound
	}

	var gerr *domain.GeocodingError
	if stderrors.As(err, &gerr) {
		switch gerr.Kind {
		case domain.GeocodeErrNotFound:
			return ErrAddressNotFound.WithMessage(gerr.Message)
		case domain.GeocodeErrTimeout:
			return ErrGeocodingTimeout
		case domain.GeocodeErrRateLimit:
			return ErrGeocodingRateLimited
		case domain.GeocodeErrConfig:
			return ErrGeocodingMisconfigured
		default:
			return ErrGeocodingProvider
		}
	}

	return ErrInternalServer
}
