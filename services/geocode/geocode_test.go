package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGeocode(t *testing.T) {
	t.Run("resolves the first address", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "161 Sajik-ro", r.URL.Query().Get("query"))
			assert.Equal(t, "id", r.Header.Get("X-NCP-APIGW-API-KEY-ID"))
			assert.Equal(t, "secret", r.Header.Get("X-NCP-APIGW-API-KEY"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"OK","addresses":[{"x":"126.9770","y":"37.5796","roadAddress":"161 Sajik-ro, Jongno-gu, Seoul"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "secret", zap.NewNop())
		res, err := c.Geocode(context.Background(), "161 Sajik-ro")
		require.NoError(t, err)
		assert.InDelta(t, 37.5796, res.Lat, 1e-9)
		assert.InDelta(t, 126.9770, res.Lng, 1e-9)
		assert.Equal(t, "161 Sajik-ro, Jongno-gu, Seoul", res.Address)
	})

	t.Run("no addresses means no coordinates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","addresses":[]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "secret", zap.NewNop())
		_, err := c.Geocode(context.Background(), "nowhere")
		assert.ErrorIs(t, err, ErrNoCoordinates)
	})

	t.Run("upstream status passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "secret", zap.NewNop())
		_, err := c.Geocode(context.Background(), "Seoul")
		var upstream *UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
	})

	t.Run("missing credentials short-circuit", func(t *testing.T) {
		c := NewClient("http://example.invalid", "", "", zap.NewNop())
		_, err := c.Geocode(context.Background(), "Seoul")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("jibun address fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","addresses":[{"x":"127.0","y":"37.5","roadAddress":"","jibunAddress":"Jongno-gu 1-1"}]}`))
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "id", "secret", zap.NewNop())
		res, err := c.Geocode(context.Background(), "Jongno")
		require.NoError(t, err)
		assert.Equal(t, "Jongno-gu 1-1", res.Address)
	})
}
