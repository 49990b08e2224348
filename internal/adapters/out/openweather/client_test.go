package openweather_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/adapters/out/openweather"
	"fulfillment/internal/pkg/errs"
)

func newTestClient(t *testing.T, handler http.Handler) *openweather.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := openweather.NewClient(openweather.Config{
		APIKey:  "api-key",
		BaseURL: server.URL + "/data/2.5/forecast",
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := openweather.NewClient(openweather.Config{}, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestForecastHighs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
		assert.Equal(t, "23236,US", r.URL.Query().Get("zip"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.Equal(t, "api-key", r.URL.Query().Get("appid"))

		_, _ = w.Write([]byte(`{"list": [
			{"main": {"temp_max": 71.2, "temp_min": 55.0}},
			{"main": {"temp_max": 68.9, "temp_min": 54.1}},
			{"main": {"temp_max": 74.5, "temp_min": 58.3}}
		]}`))
	}))

	highs, err := client.ForecastHighs(context.Background(), "23236")
	require.NoError(t, err)
	assert.Equal(t, []float64{71.2, 68.9, 74.5}, highs)
}

func TestForecastHighs_EmptyForecast(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"list": []}`))
	}))

	highs, err := client.ForecastHighs(context.Background(), "23236")
	require.NoError(t, err)
	assert.Empty(t, highs)
}

func TestForecastHighs_ErrorStatusIsUnavailable(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod": "404", "message": "city not found"}`, http.StatusNotFound)
	}))

	_, err := client.ForecastHighs(context.Background(), "00000")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}
