package model

import "time"

type ComputationLog struct {
	LogID      int                  `gorm:"column:id_log;primaryKey;autoIncrement" json:"log_id"`
	SessionID  string               `gorm:"column:session_id;type:text;not null;uniqueIndex" json:"session_id"`
	UserID     string               `gorm:"column:id_user;type:text" json:"user_id"`
	Items      []ComputationLogItem `gorm:"foreignKey:LogID;references:LogID" json:"items"`
	TotalCO2Kg float64              `gorm:"column:total_co2_kg;type:numeric;not null" json:"total_co2_kg"`
	CreatedAt  time.Time            `gorm:"column:created_at;type:timestamptz;not null" json:"created_at"`
}

func (ComputationLog) TableName() string {
	return "computation_log"
}

type ComputationLogItem struct {
	ItemID        int     `gorm:"column:id_item;primaryKey;autoIncrement" json:"item_id"`
	LogID         int     `gorm:"column:id_log;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"log_id"`
	InputKey      string  `gorm:"column:input_key;type:text;not null" json:"input_key"`
	QuantityGrams float64 `gorm:"column:quantity_grams;type:numeric;not null" json:"quantity_grams"`
	KgCO2PerKg    float64 `gorm:"column:kg_co2_per_kg;type:numeric;not null" json:"kg_co2_per_kg"`
	CO2Kg         float64 `gorm:"column:co2_kg;type:numeric;not null" json:"co2_kg"`
}

func (ComputationLogItem) TableName() string {
	return "computation_log_item"
}
