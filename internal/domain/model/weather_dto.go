package model

import (
	"go-weather/internal/domain/entity"
	"go-weather/pkg/util/formatutils"
)

// WeatherResponse is the rendered view of a weather lookup: display strings plus the raw snapshot.
type WeatherResponse struct {
	Location  entity.ResolvedLocation `json:"location"`
	Condition entity.WeatherCondition `json:"condition"`
	Current   CurrentWeatherView      `json:"current"`
	Today     TodayView               `json:"today"`
	Forecast  []ForecastDayView       `json:"forecast"`
	Snapshot  entity.WeatherSnapshot  `json:"snapshot"`
}

type CurrentWeatherView struct {
	Temperature         string `json:"temperature"`
	ApparentTemperature string `json:"apparentTemperature"`
	Humidity            string `json:"humidity"`
	Precipitation       string `json:"precipitation"`
	CloudCover          string `json:"cloudCover"`
	Pressure            string `json:"pressure"`
	WindSpeed           string `json:"windSpeed"`
	WindDirection       string `json:"windDirection"`
	WindGusts           string `json:"windGusts"`
	IsDay               bool   `json:"isDay"`
}

type TodayView struct {
	TemperatureMax           string `json:"temperatureMax"`
	TemperatureMin           string `json:"temperatureMin"`
	Sunrise                  string `json:"sunrise"`
	Sunset                   string `json:"sunset"`
	Precipitation            string `json:"precipitation"`
	PrecipitationProbability string `json:"precipitationProbability"`
}

type ForecastDayView struct {
	Date                     string                  `json:"date"`
	Condition                entity.WeatherCondition `json:"condition"`
	TemperatureMax           string                  `json:"temperatureMax"`
	TemperatureMin           string                  `json:"temperatureMin"`
	Precipitation            string                  `json:"precipitation"`
	PrecipitationProbability string                  `json:"precipitationProbability"`
	WindSpeed                string                  `json:"windSpeed"`
	WindDirection            string                  `json:"windDirection"`
}

// LocationsResponse lists every geocoding candidate in upstream order.
type LocationsResponse struct {
	Results          []entity.ResolvedLocation `json:"results"`
	GenerationTimeMs float64                   `json:"generationTimeMs"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string    `json:"error"`
	Kind   ErrorKind `json:"kind,omitempty"`
	Status int       `json:"status,omitempty"`
}

// NewWeatherResponse renders a lookup result. Today comes from daily index 0,
// the forecast lists the days after it.
func NewWeatherResponse(result entity.CityWeather) WeatherResponse {
	snapshot := result.Weather
	current := snapshot.Current

	response := WeatherResponse{
		Location:  result.Location,
		Condition: entity.GetWeatherCondition(current.WeatherCode),
		Current: CurrentWeatherView{
			Temperature:         formatutils.FormatTemperature(current.Temperature),
			ApparentTemperature: formatutils.FormatTemperature(current.ApparentTemperature),
			Humidity:            formatutils.FormatPercentage(current.RelativeHumidity),
			Precipitation:       formatutils.FormatPrecipitation(current.Precipitation),
			CloudCover:          formatutils.FormatPercentage(current.CloudCover),
			Pressure:            formatutils.FormatPressure(current.SurfacePressure),
			WindSpeed:           formatutils.FormatWindSpeed(current.WindSpeed),
			WindDirection:       formatutils.GetWindDirection(current.WindDirection),
			WindGusts:           formatutils.FormatWindSpeed(current.WindGusts),
			IsDay:               current.IsDay,
		},
		Forecast: []ForecastDayView{},
		Snapshot: snapshot,
	}

	if len(snapshot.Daily) == 0 {
		return response
	}

	today := snapshot.Daily[0]
	response.Today = TodayView{
		TemperatureMax:           formatutils.FormatTemperature(today.TemperatureMax),
		TemperatureMin:           formatutils.FormatTemperature(today.TemperatureMin),
		Sunrise:                  formatutils.FormatTime(today.Sunrise),
		Sunset:                   formatutils.FormatTime(today.Sunset),
		Precipitation:            formatutils.FormatPrecipitation(today.PrecipitationSum),
		PrecipitationProbability: formatutils.FormatPercentage(today.PrecipitationProbabilityMax),
	}

	for _, day := range snapshot.Daily[1:] {
		response.Forecast = append(response.Forecast, ForecastDayView{
			Date:                     formatutils.FormatDate(day.Date),
			Condition:                entity.GetWeatherCondition(day.WeatherCode),
			TemperatureMax:           formatutils.FormatTemperature(day.TemperatureMax),
			TemperatureMin:           formatutils.FormatTemperature(day.TemperatureMin),
			Precipitation:            formatutils.FormatPrecipitation(day.PrecipitationSum),
			PrecipitationProbability: formatutils.FormatPercentage(day.PrecipitationProbabilityMax),
			WindSpeed:                formatutils.FormatWindSpeed(day.WindSpeedMax),
			WindDirection:            formatutils.GetWindDirection(day.WindDirectionDominant),
		})
	}

	return response
}

// NewLocationsResponse converts geocoding candidates without reordering or filtering them.
func NewLocationsResponse(locations []entity.ResolvedLocation, generationTimeMs float64) LocationsResponse {
	if locations == nil {
		locations = []entity.ResolvedLocation{}
	}
	return LocationsResponse{Results: locations, GenerationTimeMs: generationTimeMs}
}
