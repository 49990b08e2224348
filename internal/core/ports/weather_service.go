package ports

import "context"

// WeatherService returns high-temperature samples (°F) over the forecast
// horizon for a destination postal code. The postal code has already been
// stripped of any ZIP+4 suffix by the caller.
type WeatherService interface {
	ForecastHighs(ctx context.Context, postalCode string) ([]float64, error)
}
