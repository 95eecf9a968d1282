package internals

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"carbonwise-server/model"
)

// TableLoader is the persistence-side provider of the four reference tables.
// Implemented by db.ReferenceDAO.
type TableLoader interface {
	LoadFoodFactors() ([]model.FoodEmissionFactor, error)
	LoadGridFactors() ([]model.GridFactor, error)
	LoadFuelFactors() ([]model.FuelEmissionFactor, error)
	LoadVehicleConsumption() ([]model.VehicleConsumption, error)
}

// ReferenceTables is one immutable snapshot of the reference data. Lookups
// never mutate it; a reload builds a fresh snapshot and swaps the pointer.
type ReferenceTables struct {
	foods    map[string]model.FoodEmissionFactor
	foodKeys []string

	grid  map[string]model.GridFactor
	fuels map[string]model.FuelEmissionFactor

	consumptionExact         map[string]model.VehicleConsumption
	consumptionByCountryFuel map[string]model.VehicleConsumption
	consumptionByFuel        map[string]model.VehicleConsumption
}

func gridKey(countryCode, subregion string) string {
	return countryCode + "|" + subregion
}

func consumptionKey(parts ...string) string {
	return strings.Join(parts, "|")
}

func buildReferenceTables(foods []model.FoodEmissionFactor, grid []model.GridFactor,
	fuels []model.FuelEmissionFactor, consumption []model.VehicleConsumption) *ReferenceTables {
	tables := &ReferenceTables{
		foods:                    make(map[string]model.FoodEmissionFactor),
		grid:                     make(map[string]model.GridFactor),
		fuels:                    make(map[string]model.FuelEmissionFactor),
		consumptionExact:         make(map[string]model.VehicleConsumption),
		consumptionByCountryFuel: make(map[string]model.VehicleConsumption),
		consumptionByFuel:        make(map[string]model.VehicleConsumption),
	}

	for _, food := range foods {
		key := NormalizeKey(food.NormalizedKey)
		if key == "" {
			continue
		}
		food.KgCO2PerKg = SanitizeFactor(food.KgCO2PerKg)
		tables.foods[key] = food
	}
	// sorted keys give the substring fallback a deterministic scan order
	for key := range tables.foods {
		tables.foodKeys = append(tables.foodKeys, key)
	}
	sort.Strings(tables.foodKeys)

	for _, record := range grid {
		record.CountryCode = NormalizeCode(record.CountryCode)
		record.Subregion = NormalizeCode(record.Subregion)
		key := gridKey(record.CountryCode, record.Subregion)
		if _, ok := tables.grid[key]; !ok {
			tables.grid[key] = record
		}
	}

	for _, record := range fuels {
		record.FuelType = NormalizeCode(record.FuelType)
		record.KgCO2PerUnit = SanitizeFactor(record.KgCO2PerUnit)
		if _, ok := tables.fuels[record.FuelType]; !ok {
			tables.fuels[record.FuelType] = record
		}
	}

	// duplicates are possible, first row in table order wins per tier
	for _, record := range consumption {
		record.CountryCode = NormalizeCode(record.CountryCode)
		record.VehicleCategory = NormalizeCode(record.VehicleCategory)
		record.FuelType = NormalizeCode(record.FuelType)

		exact := consumptionKey(record.CountryCode, record.VehicleCategory, record.FuelType)
		if _, ok := tables.consumptionExact[exact]; !ok {
			tables.consumptionExact[exact] = record
		}
		countryFuel := consumptionKey(record.CountryCode, record.FuelType)
		if _, ok := tables.consumptionByCountryFuel[countryFuel]; !ok {
			tables.consumptionByCountryFuel[countryFuel] = record
		}
		if _, ok := tables.consumptionByFuel[record.FuelType]; !ok {
			tables.consumptionByFuel[record.FuelType] = record
		}
	}

	return tables
}

func (tables *ReferenceTables) GetFood(normalizedKey string) (model.FoodEmissionFactor, bool) {
	food, ok := tables.foods[normalizedKey]
	return food, ok
}

// FindFoodSubstring returns the first food whose normalized key contains the
// needle, scanning keys in lexicographic order.
func (tables *ReferenceTables) FindFoodSubstring(needle string) (model.FoodEmissionFactor, bool) {
	if needle == "" {
		return model.FoodEmissionFactor{}, false
	}
	for _, key := range tables.foodKeys {
		if strings.Contains(key, needle) {
			return tables.foods[key], true
		}
	}
	return model.FoodEmissionFactor{}, false
}

func (tables *ReferenceTables) GetGrid(countryCode, subregion string) (model.GridFactor, bool) {
	record, ok := tables.grid[gridKey(countryCode, subregion)]
	return record, ok
}

func (tables *ReferenceTables) GetFuel(fuelType string) (model.FuelEmissionFactor, bool) {
	record, ok := tables.fuels[fuelType]
	return record, ok
}

func (tables *ReferenceTables) GetConsumptionExact(countryCode, category, fuelType string) (model.VehicleConsumption, bool) {
	record, ok := tables.consumptionExact[consumptionKey(countryCode, category, fuelType)]
	return record, ok
}

func (tables *ReferenceTables) GetConsumptionByCountryFuel(countryCode, fuelType string) (model.VehicleConsumption, bool) {
	record, ok := tables.consumptionByCountryFuel[consumptionKey(countryCode, fuelType)]
	return record, ok
}

func (tables *ReferenceTables) GetConsumptionByFuel(fuelType string) (model.VehicleConsumption, bool) {
	record, ok := tables.consumptionByFuel[fuelType]
	return record, ok
}

// TableStore holds the current snapshot behind an atomic pointer. Lookups in
// flight during a reload observe either the old or the new snapshot, never a
// half-built one.
type TableStore struct {
	loader  TableLoader
	current atomic.Pointer[ReferenceTables]
}

func NewTableStore(loader TableLoader) *TableStore {
	return &TableStore{loader: loader}
}

// Reload fetches all four tables and swaps in a fresh snapshot. On failure
// the previous snapshot stays in place.
func (store *TableStore) Reload() error {
	foods, err := store.loader.LoadFoodFactors()
	if err != nil {
		return fmt.Errorf("%w: loading food factors: %v", ErrUnavailable, err)
	}
	grid, err := store.loader.LoadGridFactors()
	if err != nil {
		return fmt.Errorf("%w: loading grid factors: %v", ErrUnavailable, err)
	}
	fuels, err := store.loader.LoadFuelFactors()
	if err != nil {
		return fmt.Errorf("%w: loading fuel factors: %v", ErrUnavailable, err)
	}
	consumption, err := store.loader.LoadVehicleConsumption()
	if err != nil {
		return fmt.Errorf("%w: loading vehicle consumption: %v", ErrUnavailable, err)
	}

	store.current.Store(buildReferenceTables(foods, grid, fuels, consumption))
	return nil
}

// Tables returns the current snapshot, loading it on first use.
func (store *TableStore) Tables() (*ReferenceTables, error) {
	if tables := store.current.Load(); tables != nil {
		return tables, nil
	}
	if err := store.Reload(); err != nil {
		return nil, err
	}
	return store.current.Load(), nil
}
