package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"carbonwise-server/db"
	"carbonwise-server/ingestion"
)

type IngestFoodResponse struct {
	IngestedCount int `json:"ingested_count"`
}

func HandleReloadTables(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		reloadTables(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func reloadTables(w http.ResponseWriter, r *http.Request) {
	err := tableStore.Reload()
	if err != nil {
		writeComputationError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func HandleIngestFood(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		ingestFood(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func ingestFood(w http.ResponseWriter, r *http.Request) {
	csvPath := os.Getenv("FOOD_CSV_PATH")
	if csvPath == "" {
		csvPath = "data/Food_type_co2.csv"
	}

	referenceDAO := db.NewReferenceDAO(db.GetDB())
	count, err := ingestion.IngestFoodCSV(referenceDAO, csvPath)
	if err != nil {
		log.Println("Error ingesting food csv: ", err)
		http.Error(w, "Error ingesting food csv", http.StatusInternalServerError)
		return
	}

	// make the new data visible to lookups
	err = tableStore.Reload()
	if err != nil {
		writeComputationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(IngestFoodResponse{IngestedCount: count})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleIngestTransport(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		ingestTransport(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func ingestTransport(w http.ResponseWriter, r *http.Request) {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "transport_co2_data"
	}

	referenceDAO := db.NewReferenceDAO(db.GetDB())
	err := ingestion.IngestTransportTables(referenceDAO, dataDir)
	if err != nil {
		log.Println("Error ingesting transport tables: ", err)
		http.Error(w, "Error ingesting transport tables", http.StatusInternalServerError)
		return
	}

	// make the new data visible to lookups
	err = tableStore.Reload()
	if err != nil {
		writeComputationError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func HandlePing(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(`{"status": "ok"}`))
	if err != nil {
		log.Println("Error while writing the response: ", err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
