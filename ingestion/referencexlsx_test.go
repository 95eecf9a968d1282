package ingestion

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTempXLSX(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestParseGridXLSXConvertsGramsToKilograms(t *testing.T) {
	path := writeTempXLSX(t, GridWorkbook, [][]interface{}{
		{"country_code", "subregion", "grid_co2_g_per_kwh"},
		{"us", "", 450},
		{"us", "ca", 250},
		{"", "", 300},
	})

	factors, err := ParseGridXLSX(path)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	assert.Equal(t, "US", factors[0].CountryCode)
	assert.Equal(t, "", factors[0].Subregion)
	assert.InDelta(t, 0.45, factors[0].KgCO2PerKwh, 1e-9)

	assert.Equal(t, "CA", factors[1].Subregion)
	assert.InDelta(t, 0.25, factors[1].KgCO2PerKwh, 1e-9)
}

func TestParseGridXLSXPrefersKilogramColumn(t *testing.T) {
	path := writeTempXLSX(t, GridWorkbook, [][]interface{}{
		{"country_code", "grid_co2_kg_per_kwh"},
		{"DE", 0.38},
	})

	factors, err := ParseGridXLSX(path)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	assert.InDelta(t, 0.38, factors[0].KgCO2PerKwh, 1e-9)
}

func TestParseFuelXLSXAcceptsColumnVariants(t *testing.T) {
	path := writeTempXLSX(t, FuelWorkbook, [][]interface{}{
		{"fuel_type", "unit", "co2_kg_per_unit"},
		{"petrol", "L", 2.31},
		{"electric", "kWh", ""},
	})

	factors, err := ParseFuelXLSX(path)
	require.NoError(t, err)
	require.Len(t, factors, 2)

	assert.Equal(t, "PETROL", factors[0].FuelType)
	require.NotNil(t, factors[0].KgCO2PerUnit)
	assert.InDelta(t, 2.31, *factors[0].KgCO2PerUnit, 1e-9)

	// ELECTRIC legitimately has no chemistry factor
	assert.Equal(t, "ELECTRIC", factors[1].FuelType)
	assert.Nil(t, factors[1].KgCO2PerUnit)
}

func TestParseConsumptionXLSXDropsIncompleteRows(t *testing.T) {
	path := writeTempXLSX(t, ConsumptionWorkbook, [][]interface{}{
		{"country_code", "vehicle_category", "fuel_type", "consumption_per_km", "unit"},
		{"us", "car", "petrol", 0.08, "L/km"},
		{"us", "car", "diesel", "", "L/km"},
		{"us", "", "petrol", 0.1, "L/km"},
		{"de", "car", "diesel", -0.5, "L/km"},
	})

	records, err := ParseConsumptionXLSX(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "US", records[0].CountryCode)
	assert.Equal(t, "CAR", records[0].VehicleCategory)
	assert.Equal(t, "PETROL", records[0].FuelType)
	assert.InDelta(t, 0.08, records[0].ConsumptionPerKm, 1e-9)
	assert.Equal(t, "L/km", records[0].Unit)
}

func TestParseConsumptionXLSXAcceptsCategoryAlias(t *testing.T) {
	path := writeTempXLSX(t, ConsumptionWorkbook, [][]interface{}{
		{"country_code", "category", "fuel_type", "consumption_per_km"},
		{"IN", "scooter", "petrol", 0.03},
	})

	records, err := ParseConsumptionXLSX(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "SCOOTER", records[0].VehicleCategory)
}
