package internals

import (
	"fmt"
	"time"

	"carbonwise-server/model"

	"github.com/google/uuid"
)

// DietItem is one consumed food in a computation request.
type DietItem struct {
	FoodType      string  `json:"food_type"`
	QuantityGrams float64 `json:"quantity_grams"`
}

// ComputationLogStore is the append-only log sink. Implemented by
// db.ComputationLogDAO.
type ComputationLogStore interface {
	CreateLog(logRecord *model.ComputationLog) error
}

// DietComputer resolves factors for a batch of food items and persists one
// immutable log record per successful computation.
type DietComputer struct {
	resolver *Resolver
	logs     ComputationLogStore
}

func NewDietComputer(resolver *Resolver, logs ComputationLogStore) *DietComputer {
	return &DietComputer{resolver: resolver, logs: logs}
}

// ComputeDietCO2 computes per-item and total CO2 for a batch of food items.
// One unresolvable item fails the whole batch, and the log record is written
// only after every item succeeded.
func (computer *DietComputer) ComputeDietCO2(items []DietItem, userID string) (model.DietComputation, error) {
	if len(items) == 0 {
		return model.DietComputation{}, fmt.Errorf("%w: no items provided", ErrInvalidInput)
	}

	// one session groups all items of this event
	sessionID := uuid.NewString()

	results := make([]model.DietItemResult, 0, len(items))
	totalCO2 := 0.0
	for _, item := range items {
		food, err := computer.resolver.ResolveFood(item.FoodType)
		if err != nil {
			return model.DietComputation{}, err
		}

		factor := *food.KgCO2PerKg
		co2 := GramsToKilograms(item.QuantityGrams) * factor
		totalCO2 += co2

		results = append(results, model.DietItemResult{
			FoodType:      item.FoodType,
			QuantityGrams: item.QuantityGrams,
			KgCO2PerKg:    factor,
			// per-item figures are rounded for display only
			CO2Kg: RoundTo(co2, 6),
		})
	}

	// the total is the round of the raw sum, not a sum of rounded items
	total := RoundTo(totalCO2, 6)

	logRecord := model.ComputationLog{
		SessionID:  sessionID,
		UserID:     userID,
		TotalCO2Kg: total,
		CreatedAt:  time.Now().UTC(),
	}
	for _, result := range results {
		logRecord.Items = append(logRecord.Items, model.ComputationLogItem{
			InputKey:      result.FoodType,
			QuantityGrams: result.QuantityGrams,
			KgCO2PerKg:    result.KgCO2PerKg,
			CO2Kg:         result.CO2Kg,
		})
	}
	if err := computer.logs.CreateLog(&logRecord); err != nil {
		return model.DietComputation{}, fmt.Errorf("%w: writing computation log: %v", ErrUnavailable, err)
	}

	return model.DietComputation{
		SessionID:  sessionID,
		UserID:     userID,
		Results:    results,
		TotalCO2Kg: total,
	}, nil
}
