package weather

import (
	"context"
	"fmt"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type fakeGeocodingGateway struct {
	response *external.GeocodingResponse
	err      error
	queries  []string
}

func (f *fakeGeocodingGateway) SearchLocations(_ context.Context, name string) (*external.GeocodingResponse, error) {
	f.queries = append(f.queries, name)
	return f.response, f.err
}

func (f *fakeGeocodingGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

type coordinates struct {
	latitude  float64
	longitude float64
}

type fakeForecastGateway struct {
	response *external.ForecastResponse
	err      error
	calls    []coordinates
}

func (f *fakeForecastGateway) GetForecast(_ context.Context, latitude float64, longitude float64) (*external.ForecastResponse, error) {
	f.calls = append(f.calls, coordinates{latitude, longitude})
	return f.response, f.err
}

func (f *fakeForecastGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func stringPtr(v string) *string  { return &v }

// newForecastResponse builds a complete response with the given current weather code and days entries.
func newForecastResponse(weatherCode int, days int) *external.ForecastResponse {
	daily := &external.DailyDTO{}
	for i := 0; i < days; i++ {
		date := fmt.Sprintf("2025-10-%02d", 20+i)
		daily.Time = append(daily.Time, stringPtr(date))
		daily.WeatherCode = append(daily.WeatherCode, intPtr(weatherCode))
		daily.Temperature2mMax = append(daily.Temperature2mMax, floatPtr(27+float64(i)))
		daily.Temperature2mMin = append(daily.Temperature2mMin, floatPtr(17+float64(i)))
		daily.Sunrise = append(daily.Sunrise, stringPtr(date+"T05:28"))
		daily.Sunset = append(daily.Sunset, stringPtr(date+"T18:15"))
		daily.PrecipitationSum = append(daily.PrecipitationSum, floatPtr(0))
		daily.PrecipitationProbabilityMax = append(daily.PrecipitationProbabilityMax, floatPtr(10))
		daily.WindSpeed10mMax = append(daily.WindSpeed10mMax, floatPtr(4))
		daily.WindDirection10mDominant = append(daily.WindDirection10mDominant, floatPtr(140))
	}

	return &external.ForecastResponse{
		Latitude:             -23.5,
		Longitude:            -46.625,
		Timezone:             "America/Sao_Paulo",
		TimezoneAbbreviation: "GMT-3",
		Elevation:            765,
		CurrentUnits:         map[string]string{"temperature_2m": "°C"},
		Current: &external.CurrentDTO{
			Time:                stringPtr("2025-10-20T14:45"),
			Temperature2m:       floatPtr(24.3),
			RelativeHumidity2m:  floatPtr(61),
			ApparentTemperature: floatPtr(25.1),
			IsDay:               intPtr(1),
			Precipitation:       floatPtr(0),
			WeatherCode:         intPtr(weatherCode),
			CloudCover:          floatPtr(10),
			SurfacePressure:     floatPtr(925.4),
			WindSpeed10m:        floatPtr(3.2),
			WindDirection10m:    floatPtr(135),
			WindGusts10m:        floatPtr(7.4),
		},
		DailyUnits: map[string]string{"temperature_2m_max": "°C"},
		Daily:      daily,
	}
}
