package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"parcel-scheduling-service/internal/adapters/repositories"
	"parcel-scheduling-service/internal/api"
	"parcel-scheduling-service/internal/config"
	"parcel-scheduling-service/internal/metrics"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite-backed fleet repository behind the ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	parcelPath := config.Get("PARCEL_FILE", "data/parcels.csv")
	truckPath := config.Get("TRUCK_FILE", "data/trucks.csv")
	mapPath := config.Get("MAP_FILE", "data/map.csv")
	depot := config.Get("DEPOT_LOCATION", "Toronto")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed fleet data on startup for local runs.
	if err := initAndSeed(db, parcelPath, truckPath, mapPath); err != nil {
		log.Fatal(err)
	}

	metrics.RegisterDefault()

	repo := repositories.NewSQLFleetRepository(db)
	router := api.NewRouter(repo, depot)

	log.Printf("Server listening addr=:%s depot=%s", port, depot)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, parcelPath, truckPath, mapPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromFiles(db, parcelPath, truckPath, mapPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
