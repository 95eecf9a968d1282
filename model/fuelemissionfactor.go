package model

type FuelEmissionFactor struct {
	FuelFactorID int      `gorm:"column:id_fuel_factor;primaryKey;autoIncrement" json:"fuel_factor_id"`
	FuelType     string   `gorm:"column:fuel_type;type:text;not null;uniqueIndex" json:"fuel_type"`
	Unit         string   `gorm:"column:unit;type:text;not null;default:''" json:"unit"`
	KgCO2PerUnit *float64 `gorm:"column:kg_co2_per_unit;type:numeric" json:"kg_co2_per_unit"`
}

func (FuelEmissionFactor) TableName() string {
	return "fuel_emission_factor"
}
