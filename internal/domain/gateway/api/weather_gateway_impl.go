package api

import (
	"context"
	"errors"
	"strconv"

	"classy-weather/internal/domain/model/external"
	"classy-weather/pkg/http"
)

const dailyVariables = "weathercode,temperature_2m_max,temperature_2m_min"

// weatherGatewayImpl implements the WeatherGateway interface over the Open-Meteo APIs
type weatherGatewayImpl struct {
	geocodingClient *http.Client
	forecastClient  *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with one HTTP client per service
func NewWeatherGateway(geocodingUrl string, forecastUrl string, clientOptions http.ClientOptions) WeatherGateway {
	geocodingOptions := clientOptions
	geocodingOptions.Logger = http.NewZapLogger("geocoding")
	forecastOptions := clientOptions
	forecastOptions.Logger = http.NewZapLogger("forecast")

	return &weatherGatewayImpl{
		geocodingClient: http.NewHttpClient(geocodingUrl, geocodingOptions),
		forecastClient:  http.NewHttpClient(forecastUrl, forecastOptions),
	}
}

// SearchPlaces searches places by name
func (w *weatherGatewayImpl) SearchPlaces(ctx context.Context, name string) (*external.GeocodingResponse, error) {
	successResp, errResp, _, err := w.geocodingClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/search").
		WithQueryParams(map[string]string{"name": name}).
		WithSuccessResp(&external.GeocodingResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.GeocodingResponse), nil
	}

	return nil, apiError(errResp, err)
}

// GetDailyForecast gets the daily forecast for a coordinate pair
func (w *weatherGatewayImpl) GetDailyForecast(ctx context.Context, latitude, longitude float64, timezone string, days int) (*external.ForecastResponse, error) {
	params := map[string]string{
		"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
		"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
		"timezone":  timezone,
		"daily":     dailyVariables,
	}
	if days > 0 {
		params["forecast_days"] = strconv.Itoa(days)
	}

	successResp, errResp, _, err := w.forecastClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err == nil {
		return successResp.(*external.ForecastResponse), nil
	}

	return nil, apiError(errResp, err)
}

// apiError prefers the reason reported by the service over the bare status error
func apiError(errResp any, err error) error {
	if errResp != nil {
		if errorResponse, ok := errResp.(*external.APIErrorResponse); ok && errorResponse.Reason != "" {
			return errors.New(errorResponse.Reason)
		}
	}
	return err
}
