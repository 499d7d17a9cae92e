package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

const forecastMessages = "weather.forecast"

// CurrentFields are the current-condition variables requested from the forecast API
var CurrentFields = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"is_day",
	"precipitation",
	"weather_code",
	"cloud_cover",
	"surface_pressure",
	"wind_speed_10m",
	"wind_direction_10m",
	"wind_gusts_10m",
}

// DailyFields are the daily variables requested from the forecast API
var DailyFields = []string{
	"weather_code",
	"temperature_2m_max",
	"temperature_2m_min",
	"sunrise",
	"sunset",
	"precipitation_sum",
	"precipitation_probability_max",
	"wind_speed_10m_max",
	"wind_direction_10m_dominant",
}

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient    *http.Client
	days          int
	windSpeedUnit string
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client.
// days is the forecast horizon; windSpeedUnit is sent as wind_speed_unit when not empty.
func NewForecastGateway(baseUrl string, days int, windSpeedUnit string, clientOptions http.ClientOptions) ForecastGateway {
	return &forecastGatewayImpl{
		httpClient:    http.NewHttpClient(baseUrl, clientOptions),
		days:          days,
		windSpeedUnit: windSpeedUnit,
	}
}

// GetForecast gets current conditions and the daily forecast for the coordinates
func (f *forecastGatewayImpl) GetForecast(ctx context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	queryParams := map[string]string{
		"latitude":      formatCoordinate(latitude),
		"longitude":     formatCoordinate(longitude),
		"current":       strings.Join(CurrentFields, ","),
		"daily":         strings.Join(DailyFields, ","),
		"timezone":      "auto",
		"forecast_days": strconv.Itoa(f.days),
	}
	if f.windSpeedUnit != "" {
		queryParams["wind_speed_unit"] = f.windSpeedUnit
	}

	successResp, errResp, _, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath("/forecast").
		WithQueryParams(queryParams).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, toWeatherAPIError(forecastMessages, errResp, err)
	}

	return successResp.(*external.ForecastResponse), nil
}

// Health requests a single current variable and reports whether the API answered
func (f *forecastGatewayImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	start := time.Now()
	_, _, status, err := f.httpClient.Request().
		WithContext(ctx).
		WithPath("/forecast").
		WithQueryParams(map[string]string{"latitude": "-15.78", "longitude": "-47.93", "current": "temperature_2m"}).
		WithSuccessResp(&external.ForecastResponse{}).
		Execute()

	return componentHealth(f.httpClient.BaseURL(), status, time.Since(start), err, "health.forecast-down")
}

// formatCoordinate uses the shortest decimal representation, e.g. -23.55
func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
