package db

import (
	"carbonwise-server/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReferenceDAO reads and ingests the four emission reference tables. The
// resolver never queries these tables directly; it works on the in-process
// snapshot loaded through this DAO.
type ReferenceDAO struct {
	db *gorm.DB
}

func NewReferenceDAO(db *gorm.DB) *ReferenceDAO {
	return &ReferenceDAO{db: db}
}

func (referenceDAO *ReferenceDAO) LoadFoodFactors() ([]model.FoodEmissionFactor, error) {
	var foods []model.FoodEmissionFactor
	result := referenceDAO.db.Order("normalized_key").Find(&foods)
	return foods, result.Error
}

func (referenceDAO *ReferenceDAO) LoadGridFactors() ([]model.GridFactor, error) {
	var factors []model.GridFactor
	result := referenceDAO.db.Order("id_grid_factor").Find(&factors)
	return factors, result.Error
}

func (referenceDAO *ReferenceDAO) LoadFuelFactors() ([]model.FuelEmissionFactor, error) {
	var factors []model.FuelEmissionFactor
	result := referenceDAO.db.Order("id_fuel_factor").Find(&factors)
	return factors, result.Error
}

func (referenceDAO *ReferenceDAO) LoadVehicleConsumption() ([]model.VehicleConsumption, error) {
	var records []model.VehicleConsumption
	result := referenceDAO.db.Order("id_consumption").Find(&records)
	return records, result.Error
}

// UpsertFoodFactor inserts or updates one food factor keyed by its normalized
// name. Used only by ingestion.
func (referenceDAO *ReferenceDAO) UpsertFoodFactor(food *model.FoodEmissionFactor) error {
	result := referenceDAO.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"food_name", "kg_co2_per_kg"}),
	}).Create(food)
	return result.Error
}

// ReplaceGridFactors swaps the grid table for a freshly ingested one.
func (referenceDAO *ReferenceDAO) ReplaceGridFactors(factors []model.GridFactor) error {
	return referenceDAO.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.GridFactor{}).Error; err != nil {
			return err
		}
		if len(factors) == 0 {
			return nil
		}
		return tx.Create(&factors).Error
	})
}

// ReplaceFuelFactors swaps the fuel table for a freshly ingested one.
func (referenceDAO *ReferenceDAO) ReplaceFuelFactors(factors []model.FuelEmissionFactor) error {
	return referenceDAO.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.FuelEmissionFactor{}).Error; err != nil {
			return err
		}
		if len(factors) == 0 {
			return nil
		}
		return tx.Create(&factors).Error
	})
}

// ReplaceVehicleConsumption swaps the consumption table for a freshly
// ingested one, preserving row order so first-match-wins stays reproducible.
func (referenceDAO *ReferenceDAO) ReplaceVehicleConsumption(records []model.VehicleConsumption) error {
	return referenceDAO.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.VehicleConsumption{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}
