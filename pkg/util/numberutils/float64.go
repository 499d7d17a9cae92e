package numberutils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a finite float64.
// NaN and infinities are rejected along with anything strconv cannot parse.
func ToFloat64WithError(str string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%q is not a finite number", str)
	}
	return value, nil
}

// IsFloat64InRange checks if the given number is within the specified range (inclusive).
func IsFloat64InRange(num, min, max float64) bool {
	return num >= min && num <= max
}
