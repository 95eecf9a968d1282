package model

type GridFactor struct {
	GridFactorID int     `gorm:"column:id_grid_factor;primaryKey;autoIncrement" json:"grid_factor_id"`
	CountryCode  string  `gorm:"column:country_code;type:text;not null;index:idx_grid_country_subregion,unique" json:"country_code"`
	Subregion    string  `gorm:"column:subregion;type:text;not null;default:'';index:idx_grid_country_subregion,unique" json:"subregion"`
	KgCO2PerKwh  float64 `gorm:"column:kg_co2_per_kwh;type:numeric;not null" json:"kg_co2_per_kwh"`
}

func (GridFactor) TableName() string {
	return "grid_factor"
}
