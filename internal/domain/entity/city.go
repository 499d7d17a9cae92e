package entity

type ResolvedLocation struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode,omitempty"`
	Admin1      string  `json:"admin1,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

type CityWeather struct {
	Weather  WeatherSnapshot  `json:"weather"`
	Location ResolvedLocation `json:"location"`
}
