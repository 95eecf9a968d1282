package internals

import (
	"errors"
	"fmt"
	"testing"

	"carbonwise-server/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogStore struct {
	logs      []model.ComputationLog
	createErr error
}

func (store *fakeLogStore) CreateLog(logRecord *model.ComputationLog) error {
	if store.createErr != nil {
		return store.createErr
	}
	store.logs = append(store.logs, *logRecord)
	return nil
}

func newTestDietComputer(t *testing.T) (*DietComputer, *fakeLogStore) {
	t.Helper()
	logs := &fakeLogStore{}
	return NewDietComputer(newTestResolver(t, newTestLoader()), logs), logs
}

func TestComputeDietCO2SingleItem(t *testing.T) {
	computer, logs := newTestDietComputer(t)

	computation, err := computer.ComputeDietCO2([]DietItem{
		{FoodType: "Eggs", QuantityGrams: 200},
	}, "user-1")
	require.NoError(t, err)

	require.Len(t, computation.Results, 1)
	assert.Equal(t, "Eggs", computation.Results[0].FoodType)
	assert.Equal(t, 4.2, computation.Results[0].KgCO2PerKg)
	assert.InDelta(t, 0.84, computation.Results[0].CO2Kg, 1e-9)
	assert.InDelta(t, 0.84, computation.TotalCO2Kg, 1e-9)
	assert.NotEmpty(t, computation.SessionID)
	assert.Equal(t, "user-1", computation.UserID)

	// exactly one immutable log record per computation
	require.Len(t, logs.logs, 1)
	assert.Equal(t, computation.SessionID, logs.logs[0].SessionID)
	assert.InDelta(t, 0.84, logs.logs[0].TotalCO2Kg, 1e-9)
	require.Len(t, logs.logs[0].Items, 1)
	assert.Equal(t, "Eggs", logs.logs[0].Items[0].InputKey)
}

func TestComputeDietCO2MultipleItems(t *testing.T) {
	computer, logs := newTestDietComputer(t)

	computation, err := computer.ComputeDietCO2([]DietItem{
		{FoodType: "Eggs", QuantityGrams: 200},
		{FoodType: "Chicken", QuantityGrams: 150},
	}, "")
	require.NoError(t, err)

	require.Len(t, computation.Results, 2)
	assert.InDelta(t, 0.84, computation.Results[0].CO2Kg, 1e-9)
	assert.InDelta(t, 1.035, computation.Results[1].CO2Kg, 1e-9)
	// the total is the round of the raw sum
	assert.InDelta(t, 1.875, computation.TotalCO2Kg, 1e-9)

	require.Len(t, logs.logs, 1)
	require.Len(t, logs.logs[0].Items, 2)
}

func TestComputeDietCO2EmptyItems(t *testing.T) {
	computer, logs := newTestDietComputer(t)

	_, err := computer.ComputeDietCO2(nil, "user-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Empty(t, logs.logs)
}

func TestComputeDietCO2UnresolvableItemFailsBatch(t *testing.T) {
	computer, logs := newTestDietComputer(t)

	_, err := computer.ComputeDietCO2([]DietItem{
		{FoodType: "Eggs", QuantityGrams: 200},
		{FoodType: "unobtainium", QuantityGrams: 100},
	}, "user-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "unobtainium")

	// no partial success, no log record
	assert.Empty(t, logs.logs)
}

func TestComputeDietCO2SessionIDsAreFresh(t *testing.T) {
	computer, _ := newTestDietComputer(t)

	first, err := computer.ComputeDietCO2([]DietItem{{FoodType: "Eggs", QuantityGrams: 100}}, "")
	require.NoError(t, err)
	second, err := computer.ComputeDietCO2([]DietItem{{FoodType: "Eggs", QuantityGrams: 100}}, "")
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestComputeDietCO2LogStoreFailure(t *testing.T) {
	logs := &fakeLogStore{createErr: fmt.Errorf("connection reset")}
	computer := NewDietComputer(newTestResolver(t, newTestLoader()), logs)

	_, err := computer.ComputeDietCO2([]DietItem{{FoodType: "Eggs", QuantityGrams: 100}}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestComputeVehicleCO2(t *testing.T) {
	perKm := model.PerKmEmission{
		ConsumptionPerKm: 0.08,
		ConsumptionUnit:  "L/km",
		FactorUsed:       2.31,
		KgCO2PerKm:       0.1848,
		Method:           model.MethodFuelChemistry,
	}

	day, err := ComputeVehicleCO2(perKm, 42.5)
	require.NoError(t, err)
	assert.InDelta(t, 7.854, day.TotalCO2Kg, 1e-9)
	assert.Equal(t, 42.5, day.DistanceKm)

	_, err = ComputeVehicleCO2(perKm, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = ComputeVehicleCO2(perKm, -3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
