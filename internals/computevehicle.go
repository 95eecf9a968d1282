package internals

import (
	"fmt"

	"carbonwise-server/model"
)

// VehicleDayEmission is the emission total for one vehicle over one day's
// distance.
type VehicleDayEmission struct {
	PerKm      model.PerKmEmission `json:"per_km"`
	DistanceKm float64             `json:"distance_km"`
	TotalCO2Kg float64             `json:"total_co2_kg"`
}

// ComputeVehicleCO2 multiplies a resolved per-km figure by a traveled
// distance. A non-positive distance is a precondition failure: without
// movement there is nothing to report.
func ComputeVehicleCO2(perKm model.PerKmEmission, distanceKm float64) (VehicleDayEmission, error) {
	if distanceKm <= 0 {
		return VehicleDayEmission{}, fmt.Errorf("%w: distance must be positive, got %v", ErrInvalidInput, distanceKm)
	}

	return VehicleDayEmission{
		PerKm:      perKm,
		DistanceKm: distanceKm,
		TotalCO2Kg: RoundTo(perKm.KgCO2PerKm*distanceKm, 6),
	}, nil
}
