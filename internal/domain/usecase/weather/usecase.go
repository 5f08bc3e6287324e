package weather

import (
	"context"

	"classy-weather/internal/domain/entity"
)

type UseCase interface {
	// ResolvePlace returns the first geocoding match for query, or ErrLocationNotFound
	ResolvePlace(ctx context.Context, query string) (*entity.Place, error)

	// FetchForecast gets the daily forecast for a resolved place
	FetchForecast(ctx context.Context, place entity.Place) (*entity.ForecastSeries, error)

	// GetWeather resolves query and then fetches the forecast of the resolved place
	GetWeather(ctx context.Context, query string) (*entity.Weather, error)
}
