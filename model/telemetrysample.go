package model

import "time"

type TelemetrySample struct {
	SampleID     int       `gorm:"column:id_sample;primaryKey;autoIncrement" json:"sample_id"`
	UserID       string    `gorm:"column:id_user;type:text;not null;index" json:"user_id"`
	Timestamp    time.Time `gorm:"column:timestamp;type:timestamptz;not null" json:"timestamp"`
	Date         string    `gorm:"column:date;type:text;not null;index" json:"date"`
	Lat          *float64  `gorm:"column:lat;type:numeric" json:"lat"`
	Lon          *float64  `gorm:"column:lon;type:numeric" json:"lon"`
	SpeedKmh     *float64  `gorm:"column:speed_kmh;type:numeric" json:"speed_kmh"`
	DistanceKm   *float64  `gorm:"column:distance_km;type:numeric" json:"distance_km"`
	InferredMode string    `gorm:"column:inferred_mode;type:text;not null" json:"inferred_mode"`
	InsertedAt   time.Time `gorm:"column:inserted_at;type:timestamptz;not null" json:"inserted_at"`
}

func (TelemetrySample) TableName() string {
	return "telemetry_sample"
}
