package controller

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"classy-weather/internal/application/presenter"
	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/usecase/weather"
	"classy-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api       *echo.Group
	useCase   weather.UseCase
	session   *session.Session
	presenter *presenter.Presenter
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, session *session.Session, presenter *presenter.Presenter) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, session: session, presenter: presenter}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.GET("/weather/session", controller.GetSession)
	controller.api.PUT("/weather/session", controller.SetSessionQuery)
}

// GetWeather godoc
// @Summary Get the forecast of a location
// @Description Resolve a free-text location and return its daily forecast, without touching the session
// @Tags weather
// @Produce json
// @Param location query string true "Location name, at least 2 characters"
// @Success 200 {object} model.WeatherView
// @Failure 400 {object} map[string]string "Location too short"
// @Failure 404 {object} map[string]string "Location not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	location := c.QueryParam("location")
	if utf8.RuneCountInString(location) < session.MinQueryLength {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("weather.query-too-short", session.MinQueryLength)})
	}

	result, err := controller.useCase.GetWeather(c.Request().Context(), location)
	if errors.Is(err, weather.ErrLocationNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	view := controller.presenter.FromWeather(*result)
	view.Query = location
	return c.JSON(http.StatusOK, view)
}

// GetSession godoc
// @Summary Get the session state
// @Description Return the state of the current query: idle, loading, loaded or error
// @Tags weather
// @Produce json
// @Success 200 {object} model.WeatherView
// @Router /weather/session [get]
func (controller *WeatherController) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.presenter.FromState(controller.session.State()))
}

// SetSessionQuery godoc
// @Summary Change the session query
// @Description Persist the query and start its lookup. The response carries the state right after the change.
// @Tags weather
// @Accept json
// @Produce json
// @Param query body model.SetQueryDTO true "New query"
// @Success 202 {object} model.WeatherView
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /weather/session [put]
func (controller *WeatherController) SetSessionQuery(c echo.Context) error {
	var dto model.SetQueryDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	controller.session.SetQuery(c.Request().Context(), dto.Query)
	return c.JSON(http.StatusAccepted, controller.presenter.FromState(controller.session.State()))
}
