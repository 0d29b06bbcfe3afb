package metrics

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/rooms/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/rooms/:id", "404"))

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/rooms/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/rooms/:id", "404"))
	assert.Equal(t, float64(2), after-before)
}

func TestMiddleware_ErrorStatus(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.ErrBadGateway
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/boom", "502"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/boom", "502"))
	assert.Equal(t, float64(1), after-before)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	GeocodeCacheHits.WithLabelValues("geocode").Inc()

	app := fiber.New()
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "room_search_geocode_cache_hits_total")
}

func TestUpdateDBPoolMetrics(t *testing.T) {
	UpdateDBPoolMetrics(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, float64(5), testutil.ToFloat64(DBPoolConnsOpen))
	assert.Equal(t, float64(2), testutil.ToFloat64(DBPoolConnsInUse))
	assert.Equal(t, float64(3), testutil.ToFloat64(DBPoolConnsIdle))
}
