package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/msg"
	"go-weather/pkg/util/numberutils"
)

type WeatherController struct {
	api         *echo.Group
	useCase     weather.UseCase
	defaultCity string
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, defaultCity string) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, defaultCity: defaultCity}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeatherByCity)
	controller.api.GET("/weather/coordinates", controller.GetWeatherByCoordinates)
	controller.api.GET("/weather/conditions", controller.ListConditions)
	controller.api.GET("/weather/conditions/:code", controller.GetCondition)
	controller.api.GET("/locations", controller.SearchLocations)
}

// GetWeatherByCity godoc
// @Summary Get weather by city name
// @Description Resolve the city with the geocoding API, take the first candidate and return current conditions plus the daily forecast
// @Tags weather
// @Produce json
// @Param city query string false "City name" default(São Paulo)
// @Success 200 {object} model.WeatherResponse "Current weather and forecast"
// @Failure 400 {object} model.ErrorResponse "Empty city name"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 502 {object} model.ErrorResponse "Upstream answered with an error or an invalid body"
// @Failure 503 {object} model.ErrorResponse "Upstream unreachable"
// @Router /weather [get]
func (controller *WeatherController) GetWeatherByCity(c echo.Context) error {
	city := c.QueryParam("city")
	if strings.TrimSpace(city) == "" {
		city = controller.defaultCity
	}

	result, err := controller.useCase.GetWeatherByCity(c.Request().Context(), city)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewWeatherResponse(*result))
}

// GetWeatherByCoordinates godoc
// @Summary Get weather by coordinates
// @Description Return current conditions plus the daily forecast for a position reported by the caller
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees"
// @Param longitude query number true "Longitude in decimal degrees"
// @Success 200 {object} model.WeatherResponse "Current weather and forecast"
// @Failure 400 {object} model.ErrorResponse "Missing or invalid coordinates"
// @Failure 502 {object} model.ErrorResponse "Upstream answered with an error or an invalid body"
// @Failure 503 {object} model.ErrorResponse "Upstream unreachable"
// @Router /weather/coordinates [get]
func (controller *WeatherController) GetWeatherByCoordinates(c echo.Context) error {
	latitude, latErr := numberutils.ToFloat64WithError(c.QueryParam("latitude"))
	longitude, lonErr := numberutils.ToFloat64WithError(c.QueryParam("longitude"))
	if latErr != nil || lonErr != nil {
		return errorResponse(c, model.NewInvalidInputError(msg.GetMessage("weather.validation.invalid-coordinates")))
	}

	result, err := controller.useCase.GetWeatherByCoordinates(c.Request().Context(), latitude, longitude)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewWeatherResponse(*result))
}

// SearchLocations godoc
// @Summary Search locations
// @Description List every geocoding candidate for a name, in the order the geocoding API returns them
// @Tags locations
// @Produce json
// @Param name query string true "Location name"
// @Success 200 {object} model.LocationsResponse "Candidate locations"
// @Failure 400 {object} model.ErrorResponse "Empty name"
// @Failure 404 {object} model.ErrorResponse "No candidates"
// @Failure 502 {object} model.ErrorResponse "Upstream answered with an error or an invalid body"
// @Failure 503 {object} model.ErrorResponse "Upstream unreachable"
// @Router /locations [get]
func (controller *WeatherController) SearchLocations(c echo.Context) error {
	locations, response, err := controller.useCase.SearchLocations(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewLocationsResponse(locations, response.GenerationTimeMs))
}

// ListConditions godoc
// @Summary List weather conditions
// @Description Return the description, icon and background of every known WMO weather code
// @Tags weather
// @Produce json
// @Success 200 {array} entity.WeatherCondition "Known conditions sorted by code"
// @Router /weather/conditions [get]
func (controller *WeatherController) ListConditions(c echo.Context) error {
	return c.JSON(http.StatusOK, entity.AllWeatherConditions())
}

// GetCondition godoc
// @Summary Get a weather condition
// @Description Return the descriptor of a WMO weather code; unknown codes fall back to clear sky
// @Tags weather
// @Produce json
// @Param code path int true "WMO weather code"
// @Success 200 {object} entity.WeatherCondition "Condition descriptor"
// @Failure 400 {object} model.ErrorResponse "Code is not a non-negative integer"
// @Router /weather/conditions/{code} [get]
func (controller *WeatherController) GetCondition(c echo.Context) error {
	param := c.Param("code")
	if param == "" || !numberutils.IsDigits(param) {
		return errorResponse(c, model.NewInvalidInputError(msg.GetMessage("weather.validation.invalid-code")))
	}
	code, err := numberutils.ToIntWithError(param)
	if err != nil {
		return errorResponse(c, model.NewInvalidInputError(msg.GetMessage("weather.validation.invalid-code")))
	}
	return c.JSON(http.StatusOK, entity.GetWeatherCondition(code))
}

// errorResponse writes the error body with the status matching the error kind
func errorResponse(c echo.Context, err error) error {
	var apiErr *model.WeatherAPIError
	if !errors.As(err, &apiErr) {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(statusFor(apiErr.Kind), model.ErrorResponse{
		Error:  apiErr.Message,
		Kind:   apiErr.Kind,
		Status: apiErr.Status,
	})
}

func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindInvalidInput:
		return http.StatusBadRequest
	case model.KindHTTP, model.KindParse:
		return http.StatusBadGateway
	case model.KindTransport:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
