package model

type FoodEmissionFactor struct {
	FoodFactorID  int      `gorm:"column:id_food_factor;primaryKey;autoIncrement" json:"food_factor_id"`
	FoodName      string   `gorm:"column:food_name;type:text;not null" json:"food_name"`
	NormalizedKey string   `gorm:"column:normalized_key;type:text;not null;uniqueIndex" json:"normalized_key"`
	KgCO2PerKg    *float64 `gorm:"column:kg_co2_per_kg;type:numeric" json:"kg_co2_per_kg"`
}

func (FoodEmissionFactor) TableName() string {
	return "food_emission_factor"
}
