package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat64WithError(t *testing.T) {
	value, err := ToFloat64WithError(" -23.5475 ")
	require.NoError(t, err)
	assert.InDelta(t, -23.5475, value, 1e-12)

	for _, input := range []string{"", "abc", "NaN", "Inf", "-Inf", "1e400"} {
		_, err := ToFloat64WithError(input)
		assert.Error(t, err, input)
	}
}

func TestToIntWithError(t *testing.T) {
	value, err := ToIntWithError("61")
	require.NoError(t, err)
	assert.Equal(t, 61, value)

	_, err = ToIntWithError("6.1")
	assert.Error(t, err)
}

func TestRanges(t *testing.T) {
	assert.True(t, IsFloat64InRange(-90, -90, 90))
	assert.False(t, IsFloat64InRange(90.01, -90, 90))
	assert.True(t, IsDigits("0123"))
	assert.False(t, IsDigits("12a"))
}
