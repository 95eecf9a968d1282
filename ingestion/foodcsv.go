package ingestion

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"carbonwise-server/db"
	"carbonwise-server/internals"
	"carbonwise-server/model"
)

var foodNameCandidates = []string{
	"food_name", "Food", "food", "Food_name", "Food Name",
	"Name", "name", "Item", "Item Name", "FoodType", "food_type",
}

var emissionFactorCandidates = []string{
	"kgco2e_per_kg", "kgCO2e_per_kg", "kg_co2e_per_kg", "EF",
	"kgco2e", "EF_value", "ef", "kg_co2e", "ef_value", "kg_co2_per_kg",
}

// ParseFoodCSV reads a food emission-factor CSV and builds normalized
// records. The food-name and factor columns are auto-detected from candidate
// header lists; when none matches, the first non-empty column is taken as the
// name and the first column holding a numeric value in the leading rows as
// the factor. FOOD_NAME_COL / EF_COL env overrides pin columns explicitly.
func ParseFoodCSV(path string) ([]model.FoodEmissionFactor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening food csv: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading food csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("food csv %s has no data rows", path)
	}

	headers := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := map[string]string{}
		for i, header := range headers {
			if i < len(row) {
				record[strings.TrimSpace(header)] = row[i]
			}
		}
		records = append(records, record)
	}

	trimmedHeaders := make([]string, 0, len(headers))
	for _, header := range headers {
		trimmedHeaders = append(trimmedHeaders, strings.TrimSpace(header))
	}
	foodCol, factorCol := detectFoodColumns(trimmedHeaders, records)

	foods := make([]model.FoodEmissionFactor, 0, len(records))
	for _, record := range records {
		rawName := record[foodCol]
		if foodCol == "" || strings.TrimSpace(rawName) == "" {
			// no usable name column, fall back to the first filled cell
			rawName = firstNonEmpty(trimmedHeaders, record)
		}
		if strings.TrimSpace(rawName) == "" {
			continue
		}

		factor := parseFactor(record, factorCol, trimmedHeaders)
		foods = append(foods, model.FoodEmissionFactor{
			FoodName:      rawName,
			NormalizedKey: internals.NormalizeKey(rawName),
			KgCO2PerKg:    internals.SanitizeFactor(factor),
		})
	}

	return foods, nil
}

// IngestFoodCSV parses the CSV and upserts every entry by normalized key.
func IngestFoodCSV(referenceDAO *db.ReferenceDAO, path string) (int, error) {
	foods, err := ParseFoodCSV(path)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range foods {
		if err := referenceDAO.UpsertFoodFactor(&foods[i]); err != nil {
			return count, fmt.Errorf("upserting food %q: %w", foods[i].NormalizedKey, err)
		}
		count++
	}

	return count, nil
}

func detectFoodColumns(headers []string, records []map[string]string) (string, string) {
	foodCol := ""
	factorCol := ""

	if override := os.Getenv("FOOD_NAME_COL"); override != "" && containsHeader(headers, override) {
		foodCol = override
	}
	if override := os.Getenv("EF_COL"); override != "" && containsHeader(headers, override) {
		factorCol = override
	}

	if foodCol == "" {
		for _, candidate := range foodNameCandidates {
			if containsHeader(headers, candidate) {
				foodCol = candidate
				break
			}
		}
	}
	if factorCol == "" {
		for _, candidate := range emissionFactorCandidates {
			if containsHeader(headers, candidate) {
				factorCol = candidate
				break
			}
		}
	}

	if len(records) == 0 {
		return foodCol, factorCol
	}

	if foodCol == "" {
		first := records[0]
		for _, header := range headers {
			if strings.TrimSpace(first[header]) != "" {
				foodCol = header
				break
			}
		}
	}
	if factorCol == "" {
		// first column with a numeric value in the leading rows
		probe := records
		if len(probe) > 10 {
			probe = probe[:10]
		}
		for _, header := range headers {
			for _, record := range probe {
				if _, err := strconv.ParseFloat(strings.TrimSpace(record[header]), 64); err == nil {
					factorCol = header
					break
				}
			}
			if factorCol != "" {
				break
			}
		}
	}

	return foodCol, factorCol
}

func parseFactor(record map[string]string, factorCol string, headers []string) *float64 {
	if factorCol != "" {
		if value, err := strconv.ParseFloat(strings.TrimSpace(record[factorCol]), 64); err == nil {
			return &value
		}
	}
	// try any numeric column before giving the record up as factorless
	for _, header := range headers {
		if value, err := strconv.ParseFloat(strings.TrimSpace(record[header]), 64); err == nil {
			return &value
		}
	}
	return nil
}

func firstNonEmpty(headers []string, record map[string]string) string {
	for _, header := range headers {
		if strings.TrimSpace(record[header]) != "" {
			return record[header]
		}
	}
	return ""
}

func containsHeader(headers []string, name string) bool {
	for _, header := range headers {
		if header == name {
			return true
		}
	}
	return false
}
