package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"carbonwise-server/db"
	"carbonwise-server/internals"
)

type DietComputeRequest struct {
	Items  []internals.DietItem `json:"items"`
	UserID string               `json:"user_id"`
}

func HandleComputeDiet(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		computeDiet(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func computeDiet(w http.ResponseWriter, r *http.Request) {
	// get request body
	var request DietComputeRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error decoding request body: ", err)
		http.Error(w, "Malformed request body", http.StatusBadRequest)
		return
	}

	for _, item := range request.Items {
		if item.QuantityGrams <= 0 {
			log.Println("Non-positive quantity for item: ", item.FoodType)
			http.Error(w, "Quantity must be positive for every item", http.StatusBadRequest)
			return
		}
	}

	logDAO := db.NewComputationLogDAO(db.GetDB())
	computer := internals.NewDietComputer(resolver, logDAO)

	computation, err := computer.ComputeDietCO2(request.Items, request.UserID)
	if err != nil {
		writeComputationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(computation)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}

func HandleDietLogs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getDietLogs(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}
}

func getDietLogs(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		log.Println("Missing user id")
		http.Error(w, "Missing user id", http.StatusBadRequest)
		return
	}

	logDAO := db.NewComputationLogDAO(db.GetDB())
	logs, err := logDAO.GetLogsByUser(userID)
	if err != nil {
		log.Println("Error loading computation logs: ", err)
		http.Error(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(logs)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding JSON", http.StatusInternalServerError)
		return
	}
}
