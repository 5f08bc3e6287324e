package model

import "classy-weather/internal/domain/entity"

// DayView is one rendered forecast day
type DayView struct {
	Date        string `json:"date"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	WeatherCode int    `json:"weatherCode"`
	Min         string `json:"min"`
	Max         string `json:"max"`
}

// WeatherView is what clients display: a header line and, when loaded, the forecast days
type WeatherView struct {
	Status string        `json:"status"`
	Query  string        `json:"query"`
	Header string        `json:"header"`
	Place  *entity.Place `json:"place,omitempty"`
	Days   []DayView     `json:"days"`
	Error  string        `json:"error,omitempty"`
}

// SetQueryDTO is the body of a session query update
type SetQueryDTO struct {
	Query string `json:"query"`
}
