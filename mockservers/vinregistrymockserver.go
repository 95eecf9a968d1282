package mockservers

import (
	"fmt"
	"log"
	"net/http"
)

func StartVinRegistryApiServer() {
	http.HandleFunc("/vinregistry/", VinRegistryApiHandler)

	fmt.Println("Vin registry API server starting on port 8091")

	err := http.ListenAndServe(":8091", nil)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Vin registry API server")
	}
}

func VinRegistryApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"Results": [{"Make": "HONDA", "Model": "CIVIC", "ModelYear": "2018", "VehicleType": "PASSENGER CAR", "BodyClass": "Sedan", "FuelTypePrimary": "Gasoline"}]}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
