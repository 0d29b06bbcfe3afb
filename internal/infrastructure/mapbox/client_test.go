package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/room-search-microservice/internal/config"
	"github.com/room-search-microservice/internal/domain"
)

const dongDaResponse = `{
  "type": "FeatureCollection",
  "features": [
    {
      "id": "address.1",
      "text": "Tôn Đức Thắng",
      "place_name": "12 Tôn Đức Thắng, Đống Đa, Hà Nội, Vietnam",
      "place_type": ["address"],
      "relevance": 0.98,
      "center": [105.8312, 21.0245],
      "context": [
        {"id": "neighborhood.11", "text": "Quốc Tử Giám"},
        {"id": "locality.22", "text": "Hàng Bột"},
        {"id": "district.33", "text": "Đống Đa"},
        {"id": "district.34", "text": "Second District"},
        {"id": "Region.44", "text": "Hà Nội"},
        {"id": "country.55", "text": "Vietnam"}
      ]
    },
    {
      "id": "address.2",
      "text": "Second",
      "place_name": "Second, Hà Nội",
      "place_type": ["address"],
      "relevance": 0.5,
      "center": [105.9, 21.1]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.MapboxConfig{
		AccessToken:    "test_token",
		BaseURL:        server.URL,
		RequestTimeout: 2 * time.Second,
	}
	provider, err := NewMapboxClient(cfg, zap.NewNop())
	require.NoError(t, err)
	return provider.(*client), server
}

func TestNewMapboxClient_MissingToken(t *testing.T) {
	provider, err := NewMapboxClient(&config.MapboxConfig{AccessToken: "  ", RequestTimeout: time.Second}, zap.NewNop())

	assert.Nil(t, provider)
	require.Error(t, err)
	assert.Equal(t, domain.GeocodeErrConfig, domain.GeocodeKind(err))
}

func TestClient_Forward(t *testing.T) {
	t.Run("successful request uses first feature", func(t *testing.T) {
		var gotPath, gotToken, gotCountry, gotLimit string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotToken = r.URL.Query().Get("access_token")
			gotCountry = r.URL.Query().Get("country")
			gotLimit = r.URL.Query().Get("limit")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(dongDaResponse))
		})

		result, err := c.Forward(context.Background(), "12 Tôn Đức Thắng, Đống Đa", "VN")
		require.NoError(t, err)

		assert.Equal(t, "/geocoding/v5/mapbox.places/12 Tôn Đức Thắng, Đống Đa.json", gotPath)
		assert.Equal(t, "test_token", gotToken)
		assert.Equal(t, "vn", gotCountry)
		assert.Equal(t, "1", gotLimit)

		assert.Equal(t, 21.0245, result.Coordinate.Lat)
		assert.Equal(t, 105.8312, result.Coordinate.Lng)
		assert.Equal(t, "12 Tôn Đức Thắng, Đống Đa, Hà Nội, Vietnam", result.FormattedAddress)
		assert.Equal(t, "address", result.PlaceType)
		assert.Equal(t, domain.AddressComponents{
			District:     "Đống Đa",
			Region:       "Hà Nội",
			Locality:     "Hàng Bột",
			Neighborhood: "Quốc Tử Giám",
		}, result.AddressComponents)
	})

	t.Run("zero features is not found", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
		})

		result, err := c.Forward(context.Background(), "Nowhere street", "vn")
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, domain.IsAddressNotFound(err))
		assert.Contains(t, err.Error(), "Address not found: Nowhere street")
	})

	t.Run("locality falls back to first place name segment", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features":[{"id":"locality.1","text":"Ba Đình","place_name":"Ba Đình, Hà Nội, Vietnam",
				"place_type":["locality"],"relevance":1,"center":[105.82,21.03],
				"context":[{"id":"region.1","text":"Hà Nội"}]}]}`))
		})

		result, err := c.Forward(context.Background(), "Ba Dinh, Hanoi", "vn")
		require.NoError(t, err)
		assert.Equal(t, "Ba Đình", result.AddressComponents.District)
		assert.Equal(t, "Hà Nội", result.AddressComponents.Region)
	})
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		kind   domain.GeocodeErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Not Authorized - Invalid Token"}`, domain.GeocodeErrAuth},
		{"rate limited", http.StatusTooManyRequests, `{"message":"Rate limit exceeded"}`, domain.GeocodeErrRateLimit},
		{"server error", http.StatusInternalServerError, `oops`, domain.GeocodeErrProvider},
		{"bad request", http.StatusUnprocessableEntity, `{"message":"Query too long"}`, domain.GeocodeErrProvider},
		{"malformed body", http.StatusOK, `{"features": [`, domain.GeocodeErrParse},
		{"feature without center", http.StatusOK, `{"features":[{"id":"x","place_name":"x"}]}`, domain.GeocodeErrParse},
		{"center out of range", http.StatusOK, `{"features":[{"id":"x","center":[200, 95]}]}`, domain.GeocodeErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Forward(context.Background(), "Hà Nội", "vn")
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.GeocodeKind(err))
			assert.NotContains(t, err.Error(), "test_token")
			assert.NotContains(t, err.Error(), "Invalid Token")
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	provider, err := NewMapboxClient(&config.MapboxConfig{
		AccessToken:    "test_token",
		BaseURL:        server.URL,
		RequestTimeout: 50 * time.Millisecond,
	}, zap.NewNop())
	require.NoError(t, err)

	_, err = provider.Forward(context.Background(), "Hà Nội", "vn")
	require.Error(t, err)
	assert.Equal(t, domain.GeocodeErrTimeout, domain.GeocodeKind(err))
	assert.NotContains(t, err.Error(), "test_token")
}

func TestClient_Reverse(t *testing.T) {
	t.Run("lng,lat order and address types", func(t *testing.T) {
		var gotPath, gotTypes string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotTypes = r.URL.Query().Get("types")
			_, _ = w.Write([]byte(dongDaResponse))
		})

		result, err := c.Reverse(context.Background(), domain.Coordinate{Lat: 21.0245, Lng: 105.8312}, "vn")
		require.NoError(t, err)

		assert.Equal(t, "/geocoding/v5/mapbox.places/105.8312,21.0245.json", gotPath)
		assert.Equal(t, "address,poi", gotTypes)
		assert.Equal(t, "Đống Đa", result.AddressComponents.District)
	})

	t.Run("no features is not found", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features":[]}`))
		})

		_, err := c.Reverse(context.Background(), domain.Coordinate{Lat: 0, Lng: 0}, "")
		require.Error(t, err)
		assert.True(t, domain.IsAddressNotFound(err))
	})
}

func TestClient_Suggest(t *testing.T) {
	t.Run("returns all features in provider order", func(t *testing.T) {
		var gotAutocomplete, gotLimit string
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAutocomplete = r.URL.Query().Get("autocomplete")
			gotLimit = r.URL.Query().Get("limit")
			_, _ = w.Write([]byte(dongDaResponse))
		})

		suggestions, err := c.Suggest(context.Background(), "tôn đức", "vn", 7)
		require.NoError(t, err)

		assert.Equal(t, "true", gotAutocomplete)
		assert.Equal(t, "7", gotLimit)
		require.Len(t, suggestions, 2)
		assert.Equal(t, "address.1", suggestions[0].ID)
		assert.Equal(t, 0.98, suggestions[0].Relevance)
		assert.Equal(t, 21.0245, suggestions[0].Latitude)
		assert.Equal(t, 105.8312, suggestions[0].Longitude)
		assert.Equal(t, "address.2", suggestions[1].ID)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"features":[]}`))
		})

		suggestions, err := c.Suggest(context.Background(), "zz", "vn", 5)
		require.NoError(t, err)
		assert.NotNil(t, suggestions)
		assert.Empty(t, suggestions)
	})

	t.Run("one request per call", func(t *testing.T) {
		var calls int32
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			_, _ = w.Write([]byte(`{"features":[]}`))
		})

		_, _ = c.Suggest(context.Background(), "bì", "vn", 5)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
}
