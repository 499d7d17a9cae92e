package weather

import (
	"errors"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model/external"
)

var (
	errMissingCurrent = errors.New("forecast response has no current block")
	errMissingDaily   = errors.New("forecast response has no daily block")
)

// toWeatherSnapshot converts a forecast response into a snapshot. Any missing
// current variable or daily series, or daily series of a length other than
// days, is an error and no snapshot is built.
func toWeatherSnapshot(response *external.ForecastResponse, days int) (*entity.WeatherSnapshot, error) {
	if response == nil || response.Current == nil {
		return nil, errMissingCurrent
	}
	if response.Daily == nil {
		return nil, errMissingDaily
	}

	current, err := toCurrentConditions(response.Current)
	if err != nil {
		return nil, err
	}

	daily, err := toDailyForecasts(response.Daily, days)
	if err != nil {
		return nil, err
	}

	return &entity.WeatherSnapshot{
		Latitude:             response.Latitude,
		Longitude:            response.Longitude,
		Timezone:             response.Timezone,
		TimezoneAbbreviation: response.TimezoneAbbreviation,
		Elevation:            response.Elevation,
		Current:              current,
		CurrentUnits:         copyUnits(response.CurrentUnits),
		Daily:                daily,
		DailyUnits:           copyUnits(response.DailyUnits),
	}, nil
}

func toCurrentConditions(dto *external.CurrentDTO) (entity.CurrentConditions, error) {
	var missing []string
	requireFloat := func(name string, value *float64) float64 {
		if value == nil {
			missing = append(missing, name)
			return 0
		}
		return *value
	}
	requireInt := func(name string, value *int) int {
		if value == nil {
			missing = append(missing, name)
			return 0
		}
		return *value
	}

	current := entity.CurrentConditions{
		Temperature:         requireFloat("temperature_2m", dto.Temperature2m),
		RelativeHumidity:    requireFloat("relative_humidity_2m", dto.RelativeHumidity2m),
		ApparentTemperature: requireFloat("apparent_temperature", dto.ApparentTemperature),
		IsDay:               requireInt("is_day", dto.IsDay) == 1,
		Precipitation:       requireFloat("precipitation", dto.Precipitation),
		WeatherCode:         requireInt("weather_code", dto.WeatherCode),
		CloudCover:          requireFloat("cloud_cover", dto.CloudCover),
		SurfacePressure:     requireFloat("surface_pressure", dto.SurfacePressure),
		WindSpeed:           requireFloat("wind_speed_10m", dto.WindSpeed10m),
		WindDirection:       requireFloat("wind_direction_10m", dto.WindDirection10m),
		WindGusts:           requireFloat("wind_gusts_10m", dto.WindGusts10m),
	}
	if dto.Time == nil {
		missing = append(missing, "time")
	} else {
		current.Time = *dto.Time
	}

	if len(missing) > 0 {
		return entity.CurrentConditions{}, fmt.Errorf("current block is missing %v", missing)
	}
	return current, nil
}

func toDailyForecasts(dto *external.DailyDTO, days int) ([]entity.DailyForecast, error) {
	lengths := map[string]int{
		"time":                          len(dto.Time),
		"weather_code":                  len(dto.WeatherCode),
		"temperature_2m_max":            len(dto.Temperature2mMax),
		"temperature_2m_min":            len(dto.Temperature2mMin),
		"sunrise":                       len(dto.Sunrise),
		"sunset":                        len(dto.Sunset),
		"precipitation_sum":             len(dto.PrecipitationSum),
		"precipitation_probability_max": len(dto.PrecipitationProbabilityMax),
		"wind_speed_10m_max":            len(dto.WindSpeed10mMax),
		"wind_direction_10m_dominant":   len(dto.WindDirection10mDominant),
	}
	for name, length := range lengths {
		if length != days {
			return nil, fmt.Errorf("daily series %s has %d entries, expected %d", name, length, days)
		}
	}

	daily := make([]entity.DailyForecast, days)
	for i := range daily {
		var missing []string
		day := entity.DailyForecast{
			Date:                        valueAt(&missing, "time", dto.Time, i),
			WeatherCode:                 valueAt(&missing, "weather_code", dto.WeatherCode, i),
			TemperatureMax:              valueAt(&missing, "temperature_2m_max", dto.Temperature2mMax, i),
			TemperatureMin:              valueAt(&missing, "temperature_2m_min", dto.Temperature2mMin, i),
			Sunrise:                     valueAt(&missing, "sunrise", dto.Sunrise, i),
			Sunset:                      valueAt(&missing, "sunset", dto.Sunset, i),
			PrecipitationSum:            valueAt(&missing, "precipitation_sum", dto.PrecipitationSum, i),
			PrecipitationProbabilityMax: valueAt(&missing, "precipitation_probability_max", dto.PrecipitationProbabilityMax, i),
			WindSpeedMax:                valueAt(&missing, "wind_speed_10m_max", dto.WindSpeed10mMax, i),
			WindDirectionDominant:       valueAt(&missing, "wind_direction_10m_dominant", dto.WindDirection10mDominant, i),
		}
		if len(missing) > 0 {
			return nil, fmt.Errorf("daily entry %d has null %v", i, missing)
		}
		daily[i] = day
	}
	return daily, nil
}

// valueAt dereferences series[i], recording name in missing when the element is null
func valueAt[T any](missing *[]string, name string, series []*T, i int) T {
	if series[i] == nil {
		*missing = append(*missing, name)
		var zero T
		return zero
	}
	return *series[i]
}

func copyUnits(units map[string]string) map[string]string {
	copied := make(map[string]string, len(units))
	for k, v := range units {
		copied[k] = v
	}
	return copied
}
