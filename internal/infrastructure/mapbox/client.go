package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain"
	"github.com/room-search-microservice/internal/domain/repository"
	"github.com/room-search-microservice/internal/pkg/metrics"
)

const (
	placesPath      = "/geocoding/v5/mapbox.places/"
	maxResponseSize = 1 << 20
	reverseTypes    = "address,poi"
)

// Операции для логов и метрик
const (
	opForward = "forward"
	opReverse = "reverse"
	opSuggest = "suggest"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	logger      *zap.Logger
}

// NewMapboxClient создает новый клиент Mapbox Geocoding API.
// Без токена доступа возвращает domain.ErrMissingAccessToken.
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) (repository.GeocodingProvider, error) {
	if strings.TrimSpace(cfg.AccessToken) == "" {
		return nil, domain.ErrMissingAccessToken
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		logger:      logger,
	}, nil
}

// Forward возвращает самое релевантное совпадение для адреса
func (c *client) Forward(ctx context.Context, address, country string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("limit", "1")
	setCountry(params, country)

	resp, err := c.get(ctx, opForward, url.PathEscape(address), params)
	if err != nil {
		return nil, err
	}

	if len(resp.Features) == 0 {
		return nil, domain.NewGeocodingError(domain.GeocodeErrNotFound,
			fmt.Sprintf("Address not found: %s", address), nil)
	}

	return resp.Features[0].toResult()
}

// Reverse возвращает адрес для координат
func (c *client) Reverse(ctx context.Context, coord domain.Coordinate, country string) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("types", reverseTypes)
	setCountry(params, country)

	// Mapbox ожидает порядок lng,lat
	query := strconv.FormatFloat(coord.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(coord.Lat, 'f', -1, 64)

	resp, err := c.get(ctx, opReverse, query, params)
	if err != nil {
		return nil, err
	}

	if len(resp.Features) == 0 {
		return nil, domain.NewGeocodingError(domain.GeocodeErrNotFound,
			fmt.Sprintf("Address not found for coordinates %s", coord), nil)
	}

	return resp.Features[0].toResult()
}

// Suggest возвращает подсказки в порядке, заданном провайдером
func (c *client) Suggest(ctx context.Context, query, country string, limit int) ([]domain.AutocompleteSuggestion, error) {
	params := url.Values{}
	params.Set("autocomplete", "true")
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	setCountry(params, country)

	resp, err := c.get(ctx, opSuggest, url.PathEscape(query), params)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.AutocompleteSuggestion, 0, len(resp.Features))
	for i := range resp.Features {
		s, err := resp.Features[i].toSuggestion()
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, *s)
	}

	return suggestions, nil
}

// get выполняет запрос к places API и классифицирует ошибки
func (c *client) get(ctx context.Context, op, query string, params url.Values) (*placesResponse, error) {
	path := placesPath + query + ".json"

	// Токен добавляется после логирования и в лог не попадает
	c.logger.Debug("Calling Mapbox Geocoding API",
		zap.String("operation", op),
		zap.String("path", path),
		zap.String("params", params.Encode()))

	params.Set("access_token", c.accessToken)
	endpoint := c.baseURL + path + "?" + params.Encode()

	start := time.Now()
	resp, err := c.fetch(ctx, op, endpoint)
	metrics.ProviderDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = string(domain.GeocodeKind(err))
	}
	metrics.ProviderRequests.WithLabelValues(op, outcome).Inc()

	return resp, err
}

func (c *client) fetch(ctx context.Context, op, endpoint string) (*placesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewGeocodingError(domain.GeocodeErrProvider, "failed to create request", stripURL(err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = stripURL(err)
		if isTimeout(err) {
			c.logger.Warn("Mapbox request timed out", zap.String("operation", op), zap.Error(err))
			return nil, domain.NewGeocodingError(domain.GeocodeErrTimeout, "Mapbox API timeout", err)
		}
		c.logger.Error("Failed to execute Mapbox request", zap.String("operation", op), zap.Error(err))
		return nil, domain.NewGeocodingError(domain.GeocodeErrProvider, "failed to execute request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		err = stripURL(err)
		if isTimeout(err) {
			return nil, domain.NewGeocodingError(domain.GeocodeErrTimeout, "Mapbox API timeout", err)
		}
		return nil, domain.NewGeocodingError(domain.GeocodeErrProvider, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Mapbox API returned error",
			zap.String("operation", op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", gjson.GetBytes(body, "message").String()))

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, domain.NewGeocodingError(domain.GeocodeErrAuth, "Invalid Mapbox access token", nil)
		case http.StatusTooManyRequests:
			return nil, domain.NewGeocodingError(domain.GeocodeErrRateLimit, "Mapbox API rate limit exceeded", nil)
		default:
			return nil, domain.NewGeocodingError(domain.GeocodeErrProvider,
				fmt.Sprintf("Mapbox API error: %d", resp.StatusCode), nil)
		}
	}

	var places placesResponse
	if err := json.Unmarshal(body, &places); err != nil {
		c.logger.Error("Failed to decode Mapbox response", zap.String("operation", op), zap.Error(err))
		return nil, domain.NewGeocodingError(domain.GeocodeErrParse, "failed to parse Mapbox response", err)
	}

	c.logger.Debug("Mapbox Geocoding API call successful",
		zap.String("operation", op),
		zap.Int("features", len(places.Features)))

	return &places, nil
}

func setCountry(params url.Values, country string) {
	if country = strings.TrimSpace(country); country != "" {
		params.Set("country", strings.ToLower(country))
	}
}

// stripURL убирает URL запроса (с токеном) из ошибок net/http
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
