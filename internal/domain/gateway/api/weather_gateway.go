package api

import (
	"context"

	"classy-weather/internal/domain/model/external"
)

// WeatherGateway defines the external calls needed to turn a place name into a forecast
type WeatherGateway interface {
	// SearchPlaces queries the geocoding service with the raw place name
	SearchPlaces(ctx context.Context, name string) (*external.GeocodingResponse, error)

	// GetDailyForecast gets the daily weather code and min/max temperature series
	// for the given coordinates, with dates expressed in timezone
	GetDailyForecast(ctx context.Context, latitude, longitude float64, timezone string, days int) (*external.ForecastResponse, error)
}
