package db

import (
	"carbonwise-server/model"

	"gorm.io/gorm"
)

type ComputationLogDAO struct {
	db *gorm.DB
}

func NewComputationLogDAO(db *gorm.DB) *ComputationLogDAO {
	return &ComputationLogDAO{db: db}
}

// CreateLog appends one computation log with its items. Logs are append-only,
// no update or delete exists on this DAO.
func (logDAO *ComputationLogDAO) CreateLog(logRecord *model.ComputationLog) error {
	// takes a pointer, in order to update the param struct
	result := logDAO.db.Create(logRecord)
	return result.Error
}

func (logDAO *ComputationLogDAO) GetLogsByUser(userID string) ([]model.ComputationLog, error) {
	var logs []model.ComputationLog
	result := logDAO.db.
		Preload("Items").
		Where("id_user = ?", userID).
		Order("created_at DESC").
		Find(&logs)
	return logs, result.Error
}
