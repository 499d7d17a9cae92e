package external

// GeocodingResponse represents the response from the Open-Meteo geocoding search API.
// Results is absent when nothing matches the query.
type GeocodingResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationTimeMs float64           `json:"generationtime_ms"`
}

// GeocodingResult represents a single candidate returned by the geocoding search
type GeocodingResult struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	FeatureCode string  `json:"feature_code"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Timezone    string  `json:"timezone"`
	Population  int64   `json:"population"`
	Admin1      string  `json:"admin1"`
	Admin2      string  `json:"admin2"`
	Admin3      string  `json:"admin3"`
	Admin4      string  `json:"admin4"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude             float64           `json:"latitude"`
	Longitude            float64           `json:"longitude"`
	GenerationTimeMs     float64           `json:"generationtime_ms"`
	UTCOffsetSeconds     int               `json:"utc_offset_seconds"`
	Timezone             string            `json:"timezone"`
	TimezoneAbbreviation string            `json:"timezone_abbreviation"`
	Elevation            float64           `json:"elevation"`
	CurrentUnits         map[string]string `json:"current_units"`
	Current              *CurrentDTO       `json:"current"`
	DailyUnits           map[string]string `json:"daily_units"`
	Daily                *DailyDTO         `json:"daily"`
}

// CurrentDTO holds the current block. Fields are pointers so that a value
// missing from the response can be told apart from a zero reading.
type CurrentDTO struct {
	Time                *string  `json:"time"`
	Interval            int      `json:"interval"`
	Temperature2m       *float64 `json:"temperature_2m"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m"`
	ApparentTemperature *float64 `json:"apparent_temperature"`
	IsDay               *int     `json:"is_day"`
	Precipitation       *float64 `json:"precipitation"`
	WeatherCode         *int     `json:"weather_code"`
	CloudCover          *float64 `json:"cloud_cover"`
	SurfacePressure     *float64 `json:"surface_pressure"`
	WindSpeed10m        *float64 `json:"wind_speed_10m"`
	WindDirection10m    *float64 `json:"wind_direction_10m"`
	WindGusts10m        *float64 `json:"wind_gusts_10m"`
}

// DailyDTO holds the daily block; every slice is aligned by position, index 0 is today.
// Elements are nil where Open-Meteo reports null.
type DailyDTO struct {
	Time                        []*string  `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max"`
	Temperature2mMin            []*float64 `json:"temperature_2m_min"`
	Sunrise                     []*string  `json:"sunrise"`
	Sunset                      []*string  `json:"sunset"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	WindSpeed10mMax             []*float64 `json:"wind_speed_10m_max"`
	WindDirection10mDominant    []*float64 `json:"wind_direction_10m_dominant"`
}

// APIErrorResponse represents error responses from the Open-Meteo APIs
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
