package entity

type CurrentConditions struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature"`
	ApparentTemperature float64 `json:"apparentTemperature"`
	RelativeHumidity    float64 `json:"relativeHumidity"`
	IsDay               bool    `json:"isDay"`
	Precipitation       float64 `json:"precipitation"`
	WeatherCode         int     `json:"weatherCode"`
	CloudCover          float64 `json:"cloudCover"`
	SurfacePressure     float64 `json:"surfacePressure"`
	WindSpeed           float64 `json:"windSpeed"`
	WindDirection       float64 `json:"windDirection"`
	WindGusts           float64 `json:"windGusts"`
}

// WeatherSnapshot is built once per fetch from a complete forecast response
// and never mutated afterwards. Daily[0] is today.
type WeatherSnapshot struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezoneAbbreviation"`
	Elevation            float64           `json:"elevation"`
	Current              CurrentConditions `json:"current"`
	CurrentUnits         map[string]string `json:"currentUnits"`
	Daily                []DailyForecast   `json:"daily"`
	DailyUnits           map[string]string `json:"dailyUnits"`
}
