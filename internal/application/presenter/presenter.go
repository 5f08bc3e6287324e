package presenter

import (
	"fmt"
	"io"
	"time"

	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/display"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/model"
	"classy-weather/pkg/msg"
)

// Presenter turns lookup results into display models
type Presenter struct {
	now func() time.Time
}

// NewPresenter creates a presenter. now decides which day is labelled "Today"; nil means time.Now.
func NewPresenter(now func() time.Time) *Presenter {
	if now == nil {
		now = time.Now
	}
	return &Presenter{now: now}
}

// FromState builds the view of a session snapshot
func (p *Presenter) FromState(state session.State) model.WeatherView {
	view := model.WeatherView{
		Status: string(state.Status),
		Query:  state.Query,
		Days:   []model.DayView{},
	}

	switch state.Status {
	case session.StatusLoading:
		view.Header = msg.GetMessage("weather.loading")
	case session.StatusError:
		view.Header = state.Error
		view.Error = state.Error
	case session.StatusLoaded:
		if state.Weather != nil {
			loaded := p.FromWeather(*state.Weather)
			view.Header = loaded.Header
			view.Place = loaded.Place
			view.Days = loaded.Days
		}
	}

	return view
}

// FromWeather builds the view of a successful lookup
func (p *Presenter) FromWeather(weather entity.Weather) model.WeatherView {
	place := weather.Place
	now := p.now()

	days := make([]model.DayView, 0, len(weather.Forecast.Days))
	for _, day := range weather.Forecast.Days {
		days = append(days, model.DayView{
			Date:        day.Date.Format("2006-01-02"),
			Label:       display.DayLabel(day.Date, now),
			Icon:        display.WeatherIcon(day.WeatherCode),
			WeatherCode: day.WeatherCode,
			Min:         display.MinTemperature(day.MinTemp),
			Max:         display.MaxTemperature(day.MaxTemp),
		})
	}

	return model.WeatherView{
		Status: string(session.StatusLoaded),
		Header: msg.GetMessage("weather.header", display.DisplayName(place.Name, place.CountryCode)),
		Place:  &place,
		Days:   days,
	}
}

// Render writes the view as plain text, one line for the header and one per day
func (p *Presenter) Render(w io.Writer, view model.WeatherView) error {
	if view.Header == "" {
		return nil
	}
	if _, err := fmt.Fprintln(w, view.Header); err != nil {
		return err
	}
	for _, day := range view.Days {
		if _, err := fmt.Fprintf(w, "%s  %-5s  %s — %s\n", day.Icon, day.Label, day.Min, day.Max); err != nil {
			return err
		}
	}
	return nil
}
