package entity

import "time"

// ForecastDay is one entry of a daily forecast. Date is midnight in the place's timezone.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	WeatherCode int       `json:"weatherCode"`
	MinTemp     float64   `json:"minTemp"`
	MaxTemp     float64   `json:"maxTemp"`
}

// ForecastSeries is an ordered list of forecast days
type ForecastSeries struct {
	Days []ForecastDay `json:"days"`
}

// Weather is the result of a full lookup: the resolved place and its forecast
type Weather struct {
	Place    Place          `json:"place"`
	Forecast ForecastSeries `json:"forecast"`
}
