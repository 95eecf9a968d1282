package internals

import (
	"math"
	"strings"
)

// NormalizeKey canonicalizes a free-text identifier for table lookup.
// Food names match case-insensitively, so lowercase is the stored form.
func NormalizeKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeCode canonicalizes country codes, vehicle categories and fuel
// types, which are stored uppercase.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Canonical fuel types.
const (
	FuelPetrol   = "PETROL"
	FuelDiesel   = "DIESEL"
	FuelCNG      = "CNG"
	FuelElectric = "ELECTRIC"
)

// NormalizeFuel maps a free-text fuel description to a canonical fuel type.
// Unrecognized fuels pass through uppercased so they stay visible in error
// messages instead of disappearing at normalization. Empty input returns "".
func NormalizeFuel(raw string) string {
	s := NormalizeCode(raw)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "PETROL") || strings.Contains(s, "GASOLINE") {
		return FuelPetrol
	}
	if strings.Contains(s, "DIESEL") {
		return FuelDiesel
	}
	if strings.Contains(s, "CNG") {
		return FuelCNG
	}
	if strings.Contains(s, "ELECT") || strings.Contains(s, "EV") || strings.Contains(s, "BATTERY") {
		return FuelElectric
	}
	return s
}

// GramsToKilograms converts a mass in grams to kilograms.
func GramsToKilograms(grams float64) float64 {
	return grams / 1000.0
}

// SanitizeFactor converts NaN and infinities to an explicit absent marker.
// Every factor crosses this before leaving the resolver layer, so NaN never
// reaches a persisted total or a serialized response.
func SanitizeFactor(value *float64) *float64 {
	if value == nil {
		return nil
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return nil
	}
	return value
}
