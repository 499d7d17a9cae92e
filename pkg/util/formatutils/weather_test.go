package formatutils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTemperature(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{21.5, "22°C"},
		{21.4, "21°C"},
		{-0.4, "0°C"},
		{-2.5, "-3°C"},
		{0, "0°C"},
		{35.49, "35°C"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatTemperature(tt.input), "input %v", tt.input)
	}
}

func TestFormatWindSpeed(t *testing.T) {
	assert.Equal(t, "36 km/h", FormatWindSpeed(10))
	assert.Equal(t, "0 km/h", FormatWindSpeed(0))
	assert.Equal(t, "20 km/h", FormatWindSpeed(5.5))

	for speed := 0.0; speed < 60; speed += 0.7 {
		expected := fmt.Sprintf("%d km/h", int(math.Round(speed*3.6)))
		assert.Equal(t, expected, FormatWindSpeed(speed), "speed %v", speed)
	}
}

func TestFormatPressure(t *testing.T) {
	assert.Equal(t, "1013 hPa", FormatPressure(1013.25))
	assert.Equal(t, "1014 hPa", FormatPressure(1013.5))
}

func TestFormatPercentageAndPrecipitation(t *testing.T) {
	assert.Equal(t, "65%", FormatPercentage(64.6))
	assert.Equal(t, "2.4 mm", FormatPrecipitation(2.37))
	assert.Equal(t, "0.0 mm", FormatPrecipitation(0))
}

func TestGetWindDirection(t *testing.T) {
	tests := []struct {
		degrees  float64
		expected string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.25, "NNE"},
		{45, "NE"},
		{90, "E"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{337.5, "NNW"},
		{359, "N"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetWindDirection(tt.degrees), "degrees %v", tt.degrees)
	}
}

func TestGetWindDirection_Periodic(t *testing.T) {
	for degrees := 0.0; degrees < 360; degrees += 7.5 {
		expected := GetWindDirection(degrees)
		assert.Equal(t, expected, GetWindDirection(degrees+360), "degrees %v", degrees)
		assert.Equal(t, expected, GetWindDirection(degrees-360), "degrees %v", degrees)
		assert.Equal(t, expected, GetWindDirection(degrees+720), "degrees %v", degrees)
	}
}

func TestGetWindDirection_NotANumber(t *testing.T) {
	assert.Equal(t, "N", GetWindDirection(math.NaN()))
}
