package main

import (
	"log"
	"net/http"

	"carbonwise-server/handlers"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/diet/compute", handlers.HandleComputeDiet)
	mux.HandleFunc("/diet/logs", handlers.HandleDietLogs)

	mux.HandleFunc("/vehicles/co2perkm", handlers.HandleVehicleCO2PerKm)
	mux.HandleFunc("/vehicles/vin", handlers.HandleVehicleVin)

	mux.HandleFunc("/telemetry/update", handlers.HandleTelemetryUpdate)
	mux.HandleFunc("/telemetry/daily-modes", handlers.HandleDailyModes)
	mux.HandleFunc("/telemetry/daily-modes/export", handlers.HandleDailyModesExport)

	mux.HandleFunc("/predict/mode", handlers.HandlePredictMode)

	mux.HandleFunc("/admin/reloadTables", handlers.HandleReloadTables)
	mux.HandleFunc("/admin/ingestFood", handlers.HandleIngestFood)
	mux.HandleFunc("/admin/ingestTransport", handlers.HandleIngestTransport)

	mux.HandleFunc("/ping", handlers.HandlePing)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
