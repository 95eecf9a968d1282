package model

type VehicleConsumption struct {
	ConsumptionID    int     `gorm:"column:id_consumption;primaryKey;autoIncrement" json:"consumption_id"`
	CountryCode      string  `gorm:"column:country_code;type:text;not null" json:"country_code"`
	VehicleCategory  string  `gorm:"column:vehicle_category;type:text;not null" json:"vehicle_category"`
	FuelType         string  `gorm:"column:fuel_type;type:text;not null" json:"fuel_type"`
	ConsumptionPerKm float64 `gorm:"column:consumption_per_km;type:numeric;not null" json:"consumption_per_km"`
	Unit             string  `gorm:"column:unit;type:text;not null;default:''" json:"unit"`
}

func (VehicleConsumption) TableName() string {
	return "vehicle_consumption"
}
