// Package openweather adapts the OpenWeatherMap five-day forecast API to the
// weather service port.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"fulfillment/internal/pkg/errs"
)

const (
	defaultBaseURL = "http://api.openweathermap.org/data/2.5/forecast"

	requestTimeout = 30 * time.Second
)

// Config carries the API key and endpoint of an OpenWeatherMap account.
type Config struct {
	APIKey string

	// BaseURL defaults to the public forecast endpoint when empty.
	BaseURL string
}

// Client is an OpenWeatherMap forecast client. It implements
// ports.WeatherService.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a forecast client. Returns an error when the API key is
// missing.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("config.APIKey")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		logger:     logger.With("component", "openweather"),
	}, nil
}

type forecastEntryDTO struct {
	Main struct {
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
}

type forecastResponseDTO struct {
	List []forecastEntryDTO `json:"list"`
}

// ForecastHighs returns the forecast's high-temperature samples (°F) for a
// US ZIP code. Entries arrive in three-hour steps over the forecast window;
// averaging them is the caller's concern.
func (c *Client) ForecastHighs(ctx context.Context, postalCode string) ([]float64, error) {
	query := url.Values{}
	query.Set("zip", postalCode+",US")
	query.Set("units", "imperial")
	query.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewUnavailableErrorWithCause("weather forecast", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, errs.NewUnavailableErrorWithCause("weather forecast",
			fmt.Errorf("status %d: %s", resp.StatusCode, raw))
	}

	var dto forecastResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errs.NewUnavailableErrorWithCause("weather forecast", err)
	}

	highs := make([]float64, 0, len(dto.List))
	for _, entry := range dto.List {
		highs = append(highs, entry.Main.TempMax)
	}
	return highs, nil
}
