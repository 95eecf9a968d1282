package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"carbonwise-server/externals"
	"carbonwise-server/internals"
	"carbonwise-server/model"
)

type VehicleCO2Response struct {
	PerKm model.PerKmEmission           `json:"per_km"`
	Day   *internals.VehicleDayEmission `json:"day,omitempty"`
}

type VinCO2Response struct {
	Vin       string              `json:"vin"`
	Make      string              `json:"make"`
	Model     string              `json:"model"`
	ModelYear string              `json:"model_year"`
	FuelType  string              `json:"fuel_type"`
	PerKm     model.PerKmEmission `json:"per_km"`
}

func HandleVehicleCO2PerKm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		computeVehicleCO2PerKm(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func computeVehicleCO2PerKm(w http.ResponseWriter, r *http.Request) {
	// get request parameters

	country := r.URL.Query().Get("country")
	if country == "" {
		log.Println("Missing country code")
		http.Error(w, "Missing country code", http.StatusBadRequest)
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		log.Println("Missing vehicle category")
		http.Error(w, "Missing vehicle category", http.StatusBadRequest)
		return
	}
	fuel := r.URL.Query().Get("fuel")
	if fuel == "" {
		log.Println("Missing fuel type")
		http.Error(w, "Missing fuel type", http.StatusBadRequest)
		return
	}
	// subregion only matters for electric vehicles, may be empty
	subregion := r.URL.Query().Get("subregion")

	perKm, err := resolver.ComputeCO2PerKm(country, category, fuel, subregion)
	if err != nil {
		writeComputationError(w, err)
		return
	}

	response := VehicleCO2Response{PerKm: perKm}

	// with a distance the response also carries the day total
	distanceStr := r.URL.Query().Get("distance_km")
	if distanceStr != "" {
		distance, err := strconv.ParseFloat(distanceStr, 64)
		if err != nil {
			log.Println("Wrong distance format: ", err)
			http.Error(w, "Wrong distance format", http.StatusBadRequest)
			return
		}
		day, err := internals.ComputeVehicleCO2(perKm, distance)
		if err != nil {
			writeComputationError(w, err)
			return
		}
		response.Day = &day
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleVehicleVin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		computeVinCO2(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func computeVinCO2(w http.ResponseWriter, r *http.Request) {
	// get request parameters

	country := r.URL.Query().Get("country")
	if country == "" {
		log.Println("Missing country code")
		http.Error(w, "Missing country code", http.StatusBadRequest)
		return
	}
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "CAR"
	}
	subregion := r.URL.Query().Get("subregion")

	// get uploaded document image
	err := r.ParseMultipartForm(10 << 20)
	if err != nil {
		log.Println("Error parsing multipart form: ", err)
		http.Error(w, "Malformed multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Println("Missing document image: ", err)
		http.Error(w, "Missing document image", http.StatusBadRequest)
		return
	}
	defer func() {
		err = file.Close()
		if err != nil {
			log.Println("Error closing uploaded file:", err)
		}
	}()
	image, err := io.ReadAll(file)
	if err != nil {
		log.Println("Error reading uploaded file: ", err)
		http.Error(w, "Error reading uploaded file", http.StatusInternalServerError)
		return
	}

	// image -> text -> vin
	text, err := externals.ExtractTextFromImage(image, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("OCR failed: ", err)
		http.Error(w, "OCR service unavailable", http.StatusServiceUnavailable)
		return
	}
	vin := internals.ExtractVIN(text)
	if vin == "" {
		log.Println("No vin found in document text")
		http.Error(w, "No VIN found in the document", http.StatusBadRequest)
		return
	}

	// vin -> vehicle data
	decoded, err := externals.DecodeVin(vin)
	if err != nil {
		log.Println("Vin decoding failed: ", err)
		http.Error(w, "VIN registry unavailable", http.StatusServiceUnavailable)
		return
	}
	fuel := internals.NormalizeFuel(decoded.FuelTypePrimary)
	if fuel == "" {
		log.Println("Vin registry returned no fuel type for ", vin)
		http.Error(w, "VIN registry returned no fuel type", http.StatusNotFound)
		return
	}

	perKm, err := resolver.ComputeCO2PerKm(country, category, fuel, subregion)
	if err != nil {
		writeComputationError(w, err)
		return
	}

	response := VinCO2Response{
		Vin:       vin,
		Make:      decoded.Make,
		Model:     decoded.Model,
		ModelYear: decoded.ModelYear,
		FuelType:  fuel,
		PerKm:     perKm,
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
