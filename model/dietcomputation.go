package model

// DietItemResult is the per-item outcome of a diet computation, not a table.
type DietItemResult struct {
	FoodType      string  `json:"food_type"`
	QuantityGrams float64 `json:"quantity_grams"`
	KgCO2PerKg    float64 `json:"kg_co2_per_kg"`
	CO2Kg         float64 `json:"co2_kg"`
}

type DietComputation struct {
	SessionID  string           `json:"session_id"`
	UserID     string           `json:"user_id"`
	Results    []DietItemResult `json:"results"`
	TotalCO2Kg float64          `json:"total_co2_kg"`
}
