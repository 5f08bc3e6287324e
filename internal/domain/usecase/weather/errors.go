package weather

import (
	"errors"
	"fmt"

	"classy-weather/pkg/msg"
)

// ErrLocationNotFound is returned when the geocoding service has no match for the query.
var ErrLocationNotFound = errors.New(msg.GetMessage("weather.location-not-found"))

// ErrMalformedForecast is wrapped by every error raised while converting the daily series.
var ErrMalformedForecast = errors.New("malformed forecast")

func malformedForecast(detail string) error {
	return fmt.Errorf("%w: %s", ErrMalformedForecast, detail)
}
