package db

import (
	"carbonwise-server/model"

	"gorm.io/gorm"
)

type TelemetryDAO struct {
	db *gorm.DB
}

func NewTelemetryDAO(db *gorm.DB) *TelemetryDAO {
	return &TelemetryDAO{db: db}
}

func (telemetryDAO *TelemetryDAO) CreateSample(sample *model.TelemetrySample) error {
	// takes a pointer, in order to update the param struct
	result := telemetryDAO.db.Create(sample)
	return result.Error
}

// GetRecentSamples returns the most recent samples for a user, newest first.
func (telemetryDAO *TelemetryDAO) GetRecentSamples(userID string, limit int) ([]model.TelemetrySample, error) {
	var samples []model.TelemetrySample
	result := telemetryDAO.db.
		Where("id_user = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&samples)
	return samples, result.Error
}

// GetSamplesForDay returns all samples for a user on one day, in
// chronological order.
func (telemetryDAO *TelemetryDAO) GetSamplesForDay(userID, date string) ([]model.TelemetrySample, error) {
	var samples []model.TelemetrySample
	result := telemetryDAO.db.
		Where("id_user = ? AND date = ?", userID, date).
		Order("timestamp ASC").
		Find(&samples)
	return samples, result.Error
}
