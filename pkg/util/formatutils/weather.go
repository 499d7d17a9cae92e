package formatutils

import (
	"fmt"
	"math"
)

var compassPoints = [16]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// FormatTemperature rounds to the nearest whole degree Celsius, halves away from zero.
func FormatTemperature(celsius float64) string {
	return fmt.Sprintf("%d°C", roundToInt(celsius))
}

// FormatWindSpeed converts meters per second to rounded kilometers per hour.
func FormatWindSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%d km/h", roundToInt(metersPerSecond*3.6))
}

// FormatPressure rounds to the nearest whole hectopascal.
func FormatPressure(hectopascal float64) string {
	return fmt.Sprintf("%d hPa", roundToInt(hectopascal))
}

// FormatPercentage rounds a 0-100 value and appends the percent sign.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%d%%", roundToInt(value))
}

// FormatPrecipitation renders millimeters with one decimal place.
func FormatPrecipitation(millimeters float64) string {
	return fmt.Sprintf("%.1f mm", millimeters)
}

// GetWindDirection maps degrees to one of 16 compass points. The result repeats every 360 degrees.
func GetWindDirection(degrees float64) string {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return compassPoints[0]
	}

	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}
	index := int(math.Round(normalized/22.5)) % len(compassPoints)
	return compassPoints[index]
}

func roundToInt(value float64) int {
	rounded := math.Round(value)
	if rounded == 0 {
		// avoids "-0"
		return 0
	}
	return int(rounded)
}
