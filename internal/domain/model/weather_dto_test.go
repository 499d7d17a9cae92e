package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-weather/internal/domain/entity"
)

func TestNewWeatherResponse(t *testing.T) {
	result := entity.CityWeather{
		Location: entity.ResolvedLocation{Name: "Recife", Country: "Brasil", Latitude: -8.05, Longitude: -34.9},
		Weather: entity.WeatherSnapshot{
			Current: entity.CurrentConditions{
				Temperature:         27.6,
				ApparentTemperature: 31.2,
				RelativeHumidity:    78,
				IsDay:               true,
				WeatherCode:         2,
				SurfacePressure:     1011.4,
				WindSpeed:           10,
				WindDirection:       90,
				WindGusts:           12.5,
			},
			Daily: []entity.DailyForecast{
				{Date: "2025-10-20", WeatherCode: 2, TemperatureMax: 29.5, TemperatureMin: 23.1, Sunrise: "2025-10-20T05:02", Sunset: "2025-10-20T17:31", PrecipitationProbabilityMax: 20},
				{Date: "2025-10-21", WeatherCode: 61, TemperatureMax: 28.4, TemperatureMin: 22.6, WindSpeedMax: 5, WindDirectionDominant: 180, PrecipitationSum: 3.24},
				{Date: "2025-10-22", WeatherCode: 42, TemperatureMax: 30, TemperatureMin: 24},
			},
		},
	}

	response := NewWeatherResponse(result)

	assert.Equal(t, "Recife", response.Location.Name)
	assert.Equal(t, "Parcialmente nublado", response.Condition.Description)
	assert.Equal(t, "28°C", response.Current.Temperature)
	assert.Equal(t, "31°C", response.Current.ApparentTemperature)
	assert.Equal(t, "78%", response.Current.Humidity)
	assert.Equal(t, "1011 hPa", response.Current.Pressure)
	assert.Equal(t, "36 km/h", response.Current.WindSpeed)
	assert.Equal(t, "E", response.Current.WindDirection)
	assert.Equal(t, "45 km/h", response.Current.WindGusts)
	assert.True(t, response.Current.IsDay)

	assert.Equal(t, "30°C", response.Today.TemperatureMax)
	assert.Equal(t, "23°C", response.Today.TemperatureMin)
	assert.Equal(t, "05:02", response.Today.Sunrise)
	assert.Equal(t, "17:31", response.Today.Sunset)
	assert.Equal(t, "20%", response.Today.PrecipitationProbability)

	require.Len(t, response.Forecast, 2)
	assert.Equal(t, "Chuva leve", response.Forecast[0].Condition.Description)
	assert.Equal(t, "18 km/h", response.Forecast[0].WindSpeed)
	assert.Equal(t, "S", response.Forecast[0].WindDirection)
	assert.Equal(t, "3.2 mm", response.Forecast[0].Precipitation)
	// unknown code renders as clear sky
	assert.Equal(t, "Céu limpo", response.Forecast[1].Condition.Description)
}

func TestNewWeatherResponse_NoDailySeries(t *testing.T) {
	response := NewWeatherResponse(entity.CityWeather{})

	assert.Empty(t, response.Forecast)
	assert.Equal(t, TodayView{}, response.Today)
}

func TestNewLocationsResponse_NilBecomesEmpty(t *testing.T) {
	response := NewLocationsResponse(nil, 0.5)
	assert.NotNil(t, response.Results)
	assert.Empty(t, response.Results)
}
