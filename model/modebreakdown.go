package model

type ModeBreakdown struct {
	UserID      string             `json:"user_id"`
	Date        string             `json:"date"`
	TotalKm     float64            `json:"total_km"`
	ByMode      map[string]float64 `json:"by_mode"`
	SampleCount int                `json:"sample_count"`
}
