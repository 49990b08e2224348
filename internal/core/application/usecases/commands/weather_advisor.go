package commands

import (
	"context"
	"math"
	"strings"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// WeatherAdvisor converts a destination postal code into the average forecast
// high temperature used by the shipping policy.
//
// The advisor strips any ZIP+4 suffix before the lookup and averages every
// daily high sample over the forecast horizon, rounded to the nearest
// integer. A failed lookup is never fatal: the caller substitutes
// shipping.NeutralTemperature and continues.
type WeatherAdvisor struct {
	weather ports.WeatherService
}

// NewWeatherAdvisor creates a WeatherAdvisor backed by the given forecast service.
func NewWeatherAdvisor(weather ports.WeatherService) WeatherAdvisor {
	return WeatherAdvisor{weather: weather}
}

// ForecastHigh returns the rounded mean of the forecast high temperatures for
// the postal code, in °F.
func (a WeatherAdvisor) ForecastHigh(ctx context.Context, postalCode string) (int, error) {
	// ZIP+4 codes ("23236-1234") are not known to the forecast service.
	if i := strings.Index(postalCode, "-"); i >= 0 {
		postalCode = postalCode[:i]
	}

	samples, err := a.weather.ForecastHighs(ctx, postalCode)
	if err != nil {
		return 0, err
	}
	if len(samples) == 0 {
		return 0, errs.NewUnavailableError("weather forecast")
	}

	var sum float64
	for _, sample := range samples {
		sum += sample
	}

	return int(math.Round(sum / float64(len(samples)))), nil
}
