package ingestion

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"carbonwise-server/db"
	"carbonwise-server/internals"
	"carbonwise-server/model"

	"github.com/xuri/excelize/v2"
)

// Workbook file names, as published with the transport reference dataset.
const (
	GridWorkbook        = "Electricity_co2_countrywise.xlsx"
	FuelWorkbook        = "fuel_emission_factors_worldwide.xlsx"
	ConsumptionWorkbook = "Fuelconsumption_countrywise_vehiclewise.xlsx"
)

// ParseGridXLSX reads the electricity workbook. The factor column may be
// expressed in kg or in grams per kWh; grams are converted at load time. Rows
// without a country code or a usable factor are dropped.
func ParseGridXLSX(path string) ([]model.GridFactor, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	factors := make([]model.GridFactor, 0, len(rows))
	for _, row := range rows {
		country := internals.NormalizeCode(row["country_code"])
		if country == "" {
			continue
		}

		factor, ok := cellFloat(row, "grid_co2_kg_per_kwh")
		if !ok {
			if grams, gramsOK := cellFloat(row, "grid_co2_g_per_kwh"); gramsOK {
				factor = grams / 1000.0
				ok = true
			}
		}
		if !ok {
			continue
		}

		factors = append(factors, model.GridFactor{
			CountryCode: country,
			Subregion:   internals.NormalizeCode(row["subregion"]),
			KgCO2PerKwh: factor,
		})
	}

	return factors, nil
}

// ParseFuelXLSX reads the fuel-chemistry workbook, accepting the common
// column variants kg_co2_per_unit and co2_kg_per_unit. The factor may be
// absent, which is valid for ELECTRIC.
func ParseFuelXLSX(path string) ([]model.FuelEmissionFactor, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	factors := make([]model.FuelEmissionFactor, 0, len(rows))
	for _, row := range rows {
		fuelType := internals.NormalizeCode(row["fuel_type"])
		if fuelType == "" {
			continue
		}

		var factor *float64
		for _, column := range []string{"kg_co2_per_unit", "co2_kg_per_unit", "kgco2e_per_unit"} {
			if value, ok := cellFloat(row, column); ok {
				factor = &value
				break
			}
		}

		factors = append(factors, model.FuelEmissionFactor{
			FuelType:     fuelType,
			Unit:         strings.TrimSpace(row["unit"]),
			KgCO2PerUnit: internals.SanitizeFactor(factor),
		})
	}

	return factors, nil
}

// ParseConsumptionXLSX reads the per-country vehicle consumption workbook.
// Rows missing any essential column are dropped.
func ParseConsumptionXLSX(path string) ([]model.VehicleConsumption, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	records := make([]model.VehicleConsumption, 0, len(rows))
	for _, row := range rows {
		country := internals.NormalizeCode(row["country_code"])
		category := internals.NormalizeCode(row["vehicle_category"])
		if category == "" {
			category = internals.NormalizeCode(row["category"])
		}
		fuelType := internals.NormalizeCode(row["fuel_type"])
		consumption, ok := cellFloat(row, "consumption_per_km")

		if country == "" || category == "" || fuelType == "" || !ok || consumption <= 0 {
			continue
		}

		records = append(records, model.VehicleConsumption{
			CountryCode:      country,
			VehicleCategory:  category,
			FuelType:         fuelType,
			ConsumptionPerKm: consumption,
			Unit:             strings.TrimSpace(row["unit"]),
		})
	}

	return records, nil
}

// IngestTransportTables parses the three workbooks under dataDir and replaces
// the stored tables with their contents.
func IngestTransportTables(referenceDAO *db.ReferenceDAO, dataDir string) error {
	grid, err := ParseGridXLSX(filepath.Join(dataDir, GridWorkbook))
	if err != nil {
		return err
	}
	fuels, err := ParseFuelXLSX(filepath.Join(dataDir, FuelWorkbook))
	if err != nil {
		return err
	}
	consumption, err := ParseConsumptionXLSX(filepath.Join(dataDir, ConsumptionWorkbook))
	if err != nil {
		return err
	}

	if err := referenceDAO.ReplaceGridFactors(grid); err != nil {
		return fmt.Errorf("replacing grid factors: %w", err)
	}
	if err := referenceDAO.ReplaceFuelFactors(fuels); err != nil {
		return fmt.Errorf("replacing fuel factors: %w", err)
	}
	if err := referenceDAO.ReplaceVehicleConsumption(consumption); err != nil {
		return fmt.Errorf("replacing vehicle consumption: %w", err)
	}

	return nil
}

// readSheet loads the first sheet of a workbook into header-keyed rows.
// Header names are trimmed so stray spaces in the source files don't break
// column matching.
func readSheet(path string) ([]map[string]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s of %s: %w", sheet, path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s has no data rows", path)
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := map[string]string{}
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}

func cellFloat(row map[string]string, column string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(row[column]), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
