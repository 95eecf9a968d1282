package internals

import (
	"math"

	"carbonwise-server/model"
)

const earthRadiusKm = 6371.0

// Transport modes inferred from speed.
const (
	ModeWalk  = "WALK"
	ModeBike  = "BIKE"
	ModeCar   = "CAR"
	ModeOther = "OTHER"
)

// SmoothingWindow is the moving-average width used for mode inference.
const SmoothingWindow = 3

// RealtimeHistorySize is how many prior samples feed the realtime inference.
const RealtimeHistorySize = 4

// GreatCircleKm computes the haversine distance between two fixes.
func GreatCircleKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// SmoothSpeeds applies a centered moving average of the given window. With
// window <= 1 or fewer than two samples the input comes back unchanged.
func SmoothSpeeds(speeds []float64, window int) []float64 {
	if window <= 1 || len(speeds) < 2 {
		return speeds
	}

	n := len(speeds)
	smoothed := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		start := i - window/2
		if start < 0 {
			start = 0
		}
		end := i + window/2 + 1
		if end > n {
			end = n
		}
		sum := 0.0
		for j := start; j < end; j++ {
			sum += speeds[j]
		}
		smoothed = append(smoothed, sum/float64(end-start))
	}

	return smoothed
}

// InferModeFromSpeed is the coarse classifier used for continuous trip
// logging.
func InferModeFromSpeed(speedKmh float64) string {
	if speedKmh <= 7 {
		return ModeWalk
	}
	if speedKmh <= 25 {
		return ModeBike
	}
	if speedKmh <= 100 {
		return ModeCar
	}
	return ModeOther
}

// PredictTransportMode is the finer-grained classifier for one-off speed
// lookups. It is a separate consumer with its own granularity and must not be
// merged with InferModeFromSpeed.
func PredictTransportMode(speedKmh float64) string {
	if speedKmh <= 7 {
		return ModeWalk
	}
	if speedKmh <= 25 {
		return ModeBike
	}
	if speedKmh <= 60 {
		return "CAR (city)"
	}
	if speedKmh <= 120 {
		return "CAR (highway)"
	}
	if speedKmh <= 200 {
		return "BUS"
	}
	return ModeOther
}

// SampleSpeeds extracts the speed series from a chronological sample
// sequence, treating an absent speed as 0.
func SampleSpeeds(samples []model.TelemetrySample) []float64 {
	speeds := make([]float64, 0, len(samples))
	for _, sample := range samples {
		if sample.SpeedKmh != nil {
			speeds = append(speeds, *sample.SpeedKmh)
		} else {
			speeds = append(speeds, 0.0)
		}
	}
	return speeds
}

// SampleDistances resolves the per-sample distance over a chronological
// sequence: the explicit distance when carried, else the great-circle
// distance from the previous fix, else 0. The first sample contributes 0
// unless it carries an explicit value.
func SampleDistances(samples []model.TelemetrySample) []float64 {
	distances := make([]float64, 0, len(samples))
	for i, sample := range samples {
		if sample.DistanceKm != nil {
			distances = append(distances, *sample.DistanceKm)
			continue
		}
		if i == 0 {
			distances = append(distances, 0.0)
			continue
		}
		previous := samples[i-1]
		if previous.Lat != nil && previous.Lon != nil && sample.Lat != nil && sample.Lon != nil {
			distances = append(distances, GreatCircleKm(*previous.Lat, *previous.Lon, *sample.Lat, *sample.Lon))
		} else {
			distances = append(distances, 0.0)
		}
	}
	return distances
}

// DailyModeBreakdown classifies each sample by its smoothed speed and sums
// per-sample distances per mode.
func DailyModeBreakdown(userID, date string, samples []model.TelemetrySample) model.ModeBreakdown {
	breakdown := model.ModeBreakdown{
		UserID:      userID,
		Date:        date,
		ByMode:      map[string]float64{},
		SampleCount: len(samples),
	}
	if len(samples) == 0 {
		return breakdown
	}

	smoothed := SmoothSpeeds(SampleSpeeds(samples), SmoothingWindow)
	distances := SampleDistances(samples)

	total := 0.0
	for i := range samples {
		mode := InferModeFromSpeed(smoothed[i])
		breakdown.ByMode[mode] += distances[i]
		total += distances[i]
	}

	breakdown.TotalKm = RoundTo(total, 4)
	for mode, km := range breakdown.ByMode {
		breakdown.ByMode[mode] = RoundTo(km, 4)
	}

	return breakdown
}

// InferRealtimeMode estimates the mode of one new sample from a short
// trailing history. history must be in chronological order; the new sample's
// speed goes last and classification uses the last smoothed value. The result
// is stored on the sample and never revised.
func InferRealtimeMode(history []model.TelemetrySample, currentSpeedKmh float64) string {
	speeds := append(SampleSpeeds(history), currentSpeedKmh)
	smoothed := SmoothSpeeds(speeds, SmoothingWindow)
	return InferModeFromSpeed(smoothed[len(smoothed)-1])
}

// RoundTo rounds to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(value*shift) / shift
}
