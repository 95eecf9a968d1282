package internals

import (
	"testing"

	"carbonwise-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreatCircleKmIdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, GreatCircleKm(45.4642, 9.19, 45.4642, 9.19))
	assert.Equal(t, 0.0, GreatCircleKm(0, 0, 0, 0))
}

func TestGreatCircleKmSymmetry(t *testing.T) {
	there := GreatCircleKm(45.4642, 9.19, 41.9028, 12.4964)
	back := GreatCircleKm(41.9028, 12.4964, 45.4642, 9.19)
	assert.Equal(t, there, back)
}

func TestGreatCircleKmKnownDistance(t *testing.T) {
	// Milan -> Rome is roughly 477 km
	distance := GreatCircleKm(45.4642, 9.19, 41.9028, 12.4964)
	assert.InDelta(t, 477, distance, 5)
}

func TestSmoothSpeedsIdentityCases(t *testing.T) {
	speeds := []float64{10, 20, 30}
	assert.Equal(t, speeds, SmoothSpeeds(speeds, 1))
	assert.Equal(t, []float64{42.0}, SmoothSpeeds([]float64{42.0}, 3))
	assert.Empty(t, SmoothSpeeds([]float64{}, 3))
}

func TestSmoothSpeedsCenteredWindow(t *testing.T) {
	smoothed := SmoothSpeeds([]float64{0, 5, 30, 32, 4}, 3)
	require.Len(t, smoothed, 5)
	assert.InDelta(t, 2.5, smoothed[0], 1e-9)
	assert.InDelta(t, 11.666667, smoothed[1], 1e-5)
	assert.InDelta(t, 22.333333, smoothed[2], 1e-5)
	assert.InDelta(t, 22.0, smoothed[3], 1e-9)
	assert.InDelta(t, 18.0, smoothed[4], 1e-9)

	// classification on the final smoothed value
	assert.Equal(t, ModeBike, InferModeFromSpeed(smoothed[4]))
}

func TestInferModeFromSpeedThresholds(t *testing.T) {
	assert.Equal(t, ModeWalk, InferModeFromSpeed(0))
	assert.Equal(t, ModeWalk, InferModeFromSpeed(7))
	assert.Equal(t, ModeBike, InferModeFromSpeed(7.1))
	assert.Equal(t, ModeBike, InferModeFromSpeed(25))
	assert.Equal(t, ModeCar, InferModeFromSpeed(25.1))
	assert.Equal(t, ModeCar, InferModeFromSpeed(100))
	assert.Equal(t, ModeOther, InferModeFromSpeed(100.1))
}

func TestPredictTransportModeThresholds(t *testing.T) {
	assert.Equal(t, ModeWalk, PredictTransportMode(5))
	assert.Equal(t, ModeBike, PredictTransportMode(20))
	assert.Equal(t, "CAR (city)", PredictTransportMode(45))
	assert.Equal(t, "CAR (city)", PredictTransportMode(60))
	assert.Equal(t, "CAR (highway)", PredictTransportMode(110))
	assert.Equal(t, "BUS", PredictTransportMode(150))
	assert.Equal(t, ModeOther, PredictTransportMode(250))
}

func TestSampleDistances(t *testing.T) {
	samples := []model.TelemetrySample{
		// first sample without explicit distance contributes 0
		{Lat: floatPtr(45.4642), Lon: floatPtr(9.19)},
		// explicit distance wins over coordinates
		{Lat: floatPtr(45.47), Lon: floatPtr(9.20), DistanceKm: floatPtr(1.5)},
		// derived from the previous fix
		{Lat: floatPtr(45.48), Lon: floatPtr(9.21)},
		// no coordinates, no distance
		{SpeedKmh: floatPtr(12)},
	}

	distances := SampleDistances(samples)
	require.Len(t, distances, 4)
	assert.Equal(t, 0.0, distances[0])
	assert.Equal(t, 1.5, distances[1])
	expected := GreatCircleKm(45.47, 9.20, 45.48, 9.21)
	assert.InDelta(t, expected, distances[2], 1e-9)
	assert.Equal(t, 0.0, distances[3])
}

func TestSampleDistancesFirstSampleExplicit(t *testing.T) {
	samples := []model.TelemetrySample{
		{DistanceKm: floatPtr(2.0)},
	}
	assert.Equal(t, []float64{2.0}, SampleDistances(samples))
}

func TestDailyModeBreakdown(t *testing.T) {
	samples := []model.TelemetrySample{
		{SpeedKmh: floatPtr(4), DistanceKm: floatPtr(0.5)},
		{SpeedKmh: floatPtr(5), DistanceKm: floatPtr(0.4)},
		{SpeedKmh: floatPtr(50), DistanceKm: floatPtr(3.0)},
		{SpeedKmh: floatPtr(55), DistanceKm: floatPtr(3.5)},
		{SpeedKmh: floatPtr(60), DistanceKm: floatPtr(4.0)},
	}

	breakdown := DailyModeBreakdown("user-1", "2026-08-30", samples)

	assert.Equal(t, "user-1", breakdown.UserID)
	assert.Equal(t, "2026-08-30", breakdown.Date)
	assert.Equal(t, 5, breakdown.SampleCount)
	assert.InDelta(t, 11.4, breakdown.TotalKm, 1e-9)

	// smoothed speeds: 4.5, 19.667, 36.667, 55, 57.5
	assert.InDelta(t, 0.5, breakdown.ByMode[ModeWalk], 1e-9)
	assert.InDelta(t, 0.4, breakdown.ByMode[ModeBike], 1e-9)
	assert.InDelta(t, 10.5, breakdown.ByMode[ModeCar], 1e-9)
}

func TestDailyModeBreakdownEmpty(t *testing.T) {
	breakdown := DailyModeBreakdown("user-1", "2026-08-30", nil)
	assert.Equal(t, 0.0, breakdown.TotalKm)
	assert.Empty(t, breakdown.ByMode)
	assert.Equal(t, 0, breakdown.SampleCount)
}

func TestInferRealtimeMode(t *testing.T) {
	history := []model.TelemetrySample{
		{SpeedKmh: floatPtr(0)},
		{SpeedKmh: floatPtr(5)},
		{SpeedKmh: floatPtr(30)},
		{SpeedKmh: floatPtr(32)},
	}
	// smoothed last value of [0 5 30 32 4] is 18 -> BIKE
	assert.Equal(t, ModeBike, InferRealtimeMode(history, 4))

	// no history degrades to classifying the raw speed
	assert.Equal(t, ModeWalk, InferRealtimeMode(nil, 4))

	// absent speeds in history count as 0
	quiet := []model.TelemetrySample{{SpeedKmh: nil}, {SpeedKmh: nil}}
	assert.Equal(t, ModeCar, InferRealtimeMode(quiet, 200))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 0.84, RoundTo(0.8400000001, 6))
	assert.Equal(t, 1.2346, RoundTo(1.23456, 4))
	assert.Equal(t, -1.2346, RoundTo(-1.23456, 4))
}
