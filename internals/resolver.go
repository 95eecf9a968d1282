package internals

import (
	"fmt"

	"carbonwise-server/model"
)

// Resolver maps normalized keys to emission factors through ordered fallback
// chains over the current reference-table snapshot.
type Resolver struct {
	tables *TableStore
}

func NewResolver(tables *TableStore) *Resolver {
	return &Resolver{tables: tables}
}

// ResolveFood looks a food name up by its normalized key and falls back to a
// substring match for near-misses like "egg" vs "eggs". A matched record
// whose factor is absent still fails: a missing factor is missing reference
// data, never an implicit zero.
func (resolver *Resolver) ResolveFood(rawName string) (model.FoodEmissionFactor, error) {
	tables, err := resolver.tables.Tables()
	if err != nil {
		return model.FoodEmissionFactor{}, err
	}

	key := NormalizeKey(rawName)
	if key == "" {
		return model.FoodEmissionFactor{}, fmt.Errorf("%w: empty food name", ErrInvalidInput)
	}

	food, ok := tables.GetFood(key)
	if !ok {
		food, ok = tables.FindFoodSubstring(key)
	}
	if !ok || SanitizeFactor(food.KgCO2PerKg) == nil {
		return model.FoodEmissionFactor{}, fmt.Errorf("%w: no emission factor for food %q", ErrNotFound, rawName)
	}

	return food, nil
}

// ResolveConsumption runs the three consumption tiers in order: exact
// (country, category, fuel), then (country, fuel), then fuel alone.
func (resolver *Resolver) ResolveConsumption(countryCode, category, fuelType string) (model.VehicleConsumption, error) {
	tables, err := resolver.tables.Tables()
	if err != nil {
		return model.VehicleConsumption{}, err
	}

	country := NormalizeCode(countryCode)
	cat := NormalizeCode(category)
	fuel := NormalizeCode(fuelType)
	if fuel == "" {
		return model.VehicleConsumption{}, fmt.Errorf("%w: empty fuel type", ErrInvalidInput)
	}

	lookups := []func() (model.VehicleConsumption, bool){
		func() (model.VehicleConsumption, bool) { return tables.GetConsumptionExact(country, cat, fuel) },
		func() (model.VehicleConsumption, bool) { return tables.GetConsumptionByCountryFuel(country, fuel) },
		func() (model.VehicleConsumption, bool) { return tables.GetConsumptionByFuel(fuel) },
	}
	for _, lookup := range lookups {
		if record, ok := lookup(); ok {
			return record, nil
		}
	}

	return model.VehicleConsumption{}, fmt.Errorf("%w: no consumption data for %s / %s / %s", ErrNotFound, country, cat, fuel)
}

// ResolveGridFactor runs the two grid tiers: (country, subregion) exact, then
// the country-wide default stored under an empty subregion.
func (resolver *Resolver) ResolveGridFactor(countryCode, subregion string) (model.GridFactor, error) {
	tables, err := resolver.tables.Tables()
	if err != nil {
		return model.GridFactor{}, err
	}

	country := NormalizeCode(countryCode)
	sub := NormalizeCode(subregion)
	if country == "" {
		return model.GridFactor{}, fmt.Errorf("%w: empty country code", ErrInvalidInput)
	}

	lookups := []func() (model.GridFactor, bool){
		func() (model.GridFactor, bool) { return tables.GetGrid(country, sub) },
		func() (model.GridFactor, bool) { return tables.GetGrid(country, "") },
	}
	for _, lookup := range lookups {
		if record, ok := lookup(); ok {
			return record, nil
		}
	}

	return model.GridFactor{}, fmt.Errorf("%w: no grid factor for %s/%s", ErrNotFound, country, sub)
}

// ResolveFuelFactor looks up the per-unit factor for a canonical fuel type.
// ELECTRIC has no chemistry factor and is expected to fail here; it resolves
// through the grid path instead.
func (resolver *Resolver) ResolveFuelFactor(fuelType string) (model.FuelEmissionFactor, error) {
	tables, err := resolver.tables.Tables()
	if err != nil {
		return model.FuelEmissionFactor{}, err
	}

	fuel := NormalizeCode(fuelType)
	record, ok := tables.GetFuel(fuel)
	if !ok || SanitizeFactor(record.KgCO2PerUnit) == nil {
		return model.FuelEmissionFactor{}, fmt.Errorf("%w: no fuel emission factor for %s", ErrNotFound, fuel)
	}

	return record, nil
}

// ComputeCO2PerKm resolves the per-km emission figure for a vehicle context.
// Electric vehicles multiply consumption by the grid intensity of the
// country/subregion; every other fuel multiplies by its chemistry factor.
func (resolver *Resolver) ComputeCO2PerKm(countryCode, category, fuelType, subregion string) (model.PerKmEmission, error) {
	fuel := NormalizeFuel(fuelType)

	consumption, err := resolver.ResolveConsumption(countryCode, category, fuel)
	if err != nil {
		return model.PerKmEmission{}, err
	}

	if fuel == FuelElectric {
		grid, err := resolver.ResolveGridFactor(countryCode, subregion)
		if err != nil {
			return model.PerKmEmission{}, err
		}
		return model.PerKmEmission{
			ConsumptionPerKm: consumption.ConsumptionPerKm,
			ConsumptionUnit:  consumption.Unit,
			FactorUsed:       grid.KgCO2PerKwh,
			KgCO2PerKm:       consumption.ConsumptionPerKm * grid.KgCO2PerKwh,
			Method:           model.MethodElectricGrid,
		}, nil
	}

	fuelFactor, err := resolver.ResolveFuelFactor(fuel)
	if err != nil {
		return model.PerKmEmission{}, err
	}
	return model.PerKmEmission{
		ConsumptionPerKm: consumption.ConsumptionPerKm,
		ConsumptionUnit:  consumption.Unit,
		FactorUsed:       *fuelFactor.KgCO2PerUnit,
		KgCO2PerKm:       consumption.ConsumptionPerKm * *fuelFactor.KgCO2PerUnit,
		Method:           model.MethodFuelChemistry,
	}, nil
}
