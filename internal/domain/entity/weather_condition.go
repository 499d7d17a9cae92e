package entity

import "sort"

const DefaultWeatherCode = 0

type WeatherCondition struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Background  string `json:"background"`
}

// WMO weather interpretation codes as emitted by Open-Meteo.
var weatherConditions = map[int]WeatherCondition{
	0:  {Code: 0, Description: "Céu limpo", Icon: "☀️", Background: "from-sky-400 via-sky-500 to-blue-600"},
	1:  {Code: 1, Description: "Principalmente limpo", Icon: "🌤️", Background: "from-sky-300 via-sky-400 to-blue-500"},
	2:  {Code: 2, Description: "Parcialmente nublado", Icon: "⛅", Background: "from-gray-300 via-gray-400 to-gray-500"},
	3:  {Code: 3, Description: "Nublado", Icon: "☁️", Background: "from-gray-400 via-gray-500 to-gray-600"},
	45: {Code: 45, Description: "Neblina", Icon: "🌫️", Background: "from-gray-300 via-gray-400 to-gray-500"},
	48: {Code: 48, Description: "Neblina com geada", Icon: "🌫️", Background: "from-blue-200 via-blue-300 to-blue-400"},
	51: {Code: 51, Description: "Garoa leve", Icon: "🌦️", Background: "from-slate-400 via-slate-500 to-slate-600"},
	53: {Code: 53, Description: "Garoa moderada", Icon: "🌦️", Background: "from-slate-500 via-slate-600 to-slate-700"},
	55: {Code: 55, Description: "Garoa intensa", Icon: "🌦️", Background: "from-slate-600 via-slate-700 to-slate-800"},
	56: {Code: 56, Description: "Garoa gelada leve", Icon: "🌨️", Background: "from-blue-300 via-blue-400 to-blue-500"},
	57: {Code: 57, Description: "Garoa gelada intensa", Icon: "🌨️", Background: "from-blue-400 via-blue-500 to-blue-600"},
	61: {Code: 61, Description: "Chuva leve", Icon: "🌧️", Background: "from-slate-500 via-slate-600 to-slate-700"},
	63: {Code: 63, Description: "Chuva moderada", Icon: "🌧️", Background: "from-slate-600 via-slate-700 to-slate-800"},
	65: {Code: 65, Description: "Chuva intensa", Icon: "🌧️", Background: "from-slate-700 via-slate-800 to-slate-900"},
	66: {Code: 66, Description: "Chuva gelada leve", Icon: "🌨️", Background: "from-blue-400 via-blue-500 to-blue-600"},
	67: {Code: 67, Description: "Chuva gelada intensa", Icon: "🌨️", Background: "from-blue-500 via-blue-600 to-blue-700"},
	71: {Code: 71, Description: "Neve leve", Icon: "❄️", Background: "from-blue-200 via-blue-300 to-blue-400"},
	73: {Code: 73, Description: "Neve moderada", Icon: "❄️", Background: "from-blue-300 via-blue-400 to-blue-500"},
	75: {Code: 75, Description: "Neve intensa", Icon: "❄️", Background: "from-blue-400 via-blue-500 to-blue-600"},
	77: {Code: 77, Description: "Granizo", Icon: "🧊", Background: "from-gray-400 via-gray-500 to-gray-600"},
	80: {Code: 80, Description: "Pancadas de chuva leves", Icon: "🌦️", Background: "from-slate-500 via-slate-600 to-slate-700"},
	81: {Code: 81, Description: "Pancadas de chuva moderadas", Icon: "🌦️", Background: "from-slate-600 via-slate-700 to-slate-800"},
	82: {Code: 82, Description: "Pancadas de chuva intensas", Icon: "⛈️", Background: "from-slate-700 via-slate-800 to-slate-900"},
	85: {Code: 85, Description: "Pancadas de neve leves", Icon: "🌨️", Background: "from-blue-300 via-blue-400 to-blue-500"},
	86: {Code: 86, Description: "Pancadas de neve intensas", Icon: "🌨️", Background: "from-blue-400 via-blue-500 to-blue-600"},
	95: {Code: 95, Description: "Tempestade", Icon: "⛈️", Background: "from-purple-900 via-slate-800 to-slate-900"},
	96: {Code: 96, Description: "Tempestade com granizo leve", Icon: "⛈️", Background: "from-purple-800 via-slate-700 to-slate-800"},
	99: {Code: 99, Description: "Tempestade com granizo intenso", Icon: "⛈️", Background: "from-purple-900 via-slate-800 to-slate-900"},
}

// GetWeatherCondition returns the descriptor for code, falling back to clear sky for unknown codes.
func GetWeatherCondition(code int) WeatherCondition {
	if condition, ok := weatherConditions[code]; ok {
		return condition
	}
	return weatherConditions[DefaultWeatherCode]
}

// IsKnownWeatherCode reports whether code has its own descriptor.
func IsKnownWeatherCode(code int) bool {
	_, ok := weatherConditions[code]
	return ok
}

// AllWeatherConditions returns every descriptor ordered by code.
func AllWeatherConditions() []WeatherCondition {
	conditions := make([]WeatherCondition, 0, len(weatherConditions))
	for _, condition := range weatherConditions {
		conditions = append(conditions, condition)
	}
	sort.Slice(conditions, func(i, j int) bool { return conditions[i].Code < conditions[j].Code })
	return conditions
}
