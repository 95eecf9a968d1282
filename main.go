package main

import (
	"flag"
	"log"
	"os"

	"carbonwise-server/db"
	"carbonwise-server/externals"
	"carbonwise-server/handlers"
	"carbonwise-server/mockservers"

	"github.com/joho/godotenv"
)

func main() {
	// retrieve execution mode
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	testMode := os.Getenv("TEST_MODE")

	// get port from flag
	port := flag.String("port", "80", "Port on which the server listens")
	flag.Parse()

	// init db
	database, err := db.InitDB(testMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer func() {
		sqlDB, err := database.DB()
		if err != nil {
			log.Println("Failed to get DB from gorm: ", err)
			return
		}
		err = sqlDB.Close()
		if err != nil {
			return
		}
	}()

	// init apis
	externals.InitVinRegistryApi()
	externals.InitOcrApi()

	// start mock servers in new go routines
	if testMode == "test" {
		go mockservers.StartVinRegistryApiServer()
		go mockservers.StartOcrApiServer()
	}

	// build the resolver and warm the reference-table cache
	handlers.InitEmissionCore()

	// setup routes
	SetupRoutes(*port)
}
