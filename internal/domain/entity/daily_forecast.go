package entity

type DailyForecast struct {
	Date                        string  `json:"date"`
	WeatherCode                 int     `json:"weatherCode"`
	TemperatureMax              float64 `json:"temperatureMax"`
	TemperatureMin              float64 `json:"temperatureMin"`
	Sunrise                     string  `json:"sunrise"`
	Sunset                      string  `json:"sunset"`
	PrecipitationSum            float64 `json:"precipitationSum"`
	PrecipitationProbabilityMax float64 `json:"precipitationProbabilityMax"`
	WindSpeedMax                float64 `json:"windSpeedMax"`
	WindDirectionDominant       float64 `json:"windDirectionDominant"`
}
