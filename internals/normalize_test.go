package internals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "eggs", NormalizeKey("Eggs"))
	assert.Equal(t, "eggs", NormalizeKey("  EGGS  "))
	assert.Equal(t, "brown rice", NormalizeKey("Brown Rice"))
	assert.Equal(t, "", NormalizeKey("   "))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "US", NormalizeCode(" us "))
	assert.Equal(t, "CAR", NormalizeCode("car"))
	assert.Equal(t, "", NormalizeCode(""))
}

func TestNormalizeFuel(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"petrol", FuelPetrol},
		{"Unleaded Gasoline", FuelPetrol},
		{"diesel", FuelDiesel},
		{"DIESEL B7", FuelDiesel},
		{"cng", FuelCNG},
		{"electric", FuelElectric},
		{"EV", FuelElectric},
		{"Battery Electric Vehicle", FuelElectric},
		// unrecognized fuels pass through uppercased
		{"hydrogen", "HYDROGEN"},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, NormalizeFuel(test.raw), "fuel %q", test.raw)
	}

	assert.Equal(t, "", NormalizeFuel(""))
	assert.Equal(t, "", NormalizeFuel("   "))
}

func TestGramsToKilograms(t *testing.T) {
	assert.Equal(t, 0.2, GramsToKilograms(200))
	assert.Equal(t, 1.0, GramsToKilograms(1000))
	assert.Equal(t, 0.0, GramsToKilograms(0))
}

func TestSanitizeFactor(t *testing.T) {
	value := 4.2
	require.NotNil(t, SanitizeFactor(&value))
	assert.Equal(t, 4.2, *SanitizeFactor(&value))

	nan := math.NaN()
	assert.Nil(t, SanitizeFactor(&nan))

	inf := math.Inf(1)
	assert.Nil(t, SanitizeFactor(&inf))

	assert.Nil(t, SanitizeFactor(nil))
}
