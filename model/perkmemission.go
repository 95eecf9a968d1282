package model

// Method tags for PerKmEmission.
const (
	MethodFuelChemistry = "fuel_chemistry"
	MethodElectricGrid  = "electric_grid"
)

// PerKmEmission carries the resolved per-km figure together with the inputs
// used to derive it; callers multiply KgCO2PerKm by distance and must not
// recompute it from the parts.
type PerKmEmission struct {
	ConsumptionPerKm float64 `json:"consumption_per_km"`
	ConsumptionUnit  string  `json:"consumption_unit"`
	FactorUsed       float64 `json:"factor_used"`
	KgCO2PerKm       float64 `json:"kg_co2_per_km"`
	Method           string  `json:"method"`
}
