package weather

import (
	"context"
	"fmt"
	"time"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/gateway/api"
	"classy-weather/internal/domain/model/external"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type weatherUseCase struct {
	forecastDays int
	apiGateway   api.WeatherGateway
}

func NewWeatherUseCase(forecastDays int, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		forecastDays: forecastDays,
		apiGateway:   apiGateway,
	}
}

// ResolvePlace searches the geocoding service and keeps only the first result
func (uc *weatherUseCase) ResolvePlace(ctx context.Context, query string) (*entity.Place, error) {
	log.Debug(msg.GetMessage("weather.search.start", query))

	response, err := uc.apiGateway.SearchPlaces(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search location: %w", err)
	}

	if response == nil || len(response.Results) == 0 {
		return nil, ErrLocationNotFound
	}

	first := response.Results[0]
	place := &entity.Place{
		Name:        first.Name,
		CountryCode: first.CountryCode,
		Country:     first.Country,
		Region:      first.Admin1,
		Latitude:    first.Latitude,
		Longitude:   first.Longitude,
		Timezone:    first.Timezone,
	}

	log.Debug(msg.GetMessage("weather.search.resolved", query, place.Name, place.Latitude, place.Longitude),
		zap.String("country_code", place.CountryCode),
		zap.String("timezone", place.Timezone))
	return place, nil
}

// FetchForecast gets the daily series for the place and converts it to entities
func (uc *weatherUseCase) FetchForecast(ctx context.Context, place entity.Place) (*entity.ForecastSeries, error) {
	response, err := uc.apiGateway.GetDailyForecast(ctx, place.Latitude, place.Longitude, place.Timezone, uc.forecastDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather forecast: %w", err)
	}

	series, err := convertForecastResponse(response, placeLocation(place.Timezone))
	if err != nil {
		return nil, err
	}

	log.Debug(msg.GetMessage("weather.search.forecast", len(series.Days), place.Name))
	return series, nil
}

// GetWeather runs both lookups in sequence. A failure in either aborts the whole lookup.
func (uc *weatherUseCase) GetWeather(ctx context.Context, query string) (*entity.Weather, error) {
	place, err := uc.ResolvePlace(ctx, query)
	if err != nil {
		return nil, err
	}

	series, err := uc.FetchForecast(ctx, *place)
	if err != nil {
		return nil, err
	}

	return &entity.Weather{Place: *place, Forecast: *series}, nil
}

// convertForecastResponse zips the parallel daily arrays into forecast days
func convertForecastResponse(response *external.ForecastResponse, location *time.Location) (*entity.ForecastSeries, error) {
	if response == nil || response.Daily == nil {
		return nil, malformedForecast("missing daily series")
	}

	daily := response.Daily
	size := len(daily.Time)
	if len(daily.WeatherCode) != size || len(daily.Temperature2mMax) != size || len(daily.Temperature2mMin) != size {
		return nil, malformedForecast(fmt.Sprintf("daily arrays differ in length (time=%d, weathercode=%d, max=%d, min=%d)",
			size, len(daily.WeatherCode), len(daily.Temperature2mMax), len(daily.Temperature2mMin)))
	}

	days := make([]entity.ForecastDay, 0, size)
	for i, day := range daily.Time {
		date, err := time.ParseInLocation(dateLayout, day, location)
		if err != nil {
			return nil, malformedForecast(fmt.Sprintf("invalid date %q", day))
		}
		days = append(days, entity.ForecastDay{
			Date:        date,
			WeatherCode: daily.WeatherCode[i],
			MinTemp:     daily.Temperature2mMin[i],
			MaxTemp:     daily.Temperature2mMax[i],
		})
	}

	return &entity.ForecastSeries{Days: days}, nil
}

// placeLocation loads the IANA zone of the place, falling back to UTC
func placeLocation(timezone string) *time.Location {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Warn("Unknown timezone, using UTC", zap.String("timezone", timezone), zap.Error(err))
		return time.UTC
	}
	return location
}
