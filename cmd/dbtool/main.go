package main

import (
	"log"
	"os"
	"parcel-scheduling-service/internal/adapters/repositories"
	"parcel-scheduling-service/internal/config"
	"parcel-scheduling-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the Postgres schema and seeds it from the CSV
// fleet data files. Intended for deployed environments where the
// server does not manage its own database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	parcelPath := config.Get("PARCEL_FILE", "data/parcels.csv")
	truckPath := config.Get("TRUCK_FILE", "data/trucks.csv")
	mapPath := config.Get("MAP_FILE", "data/map.csv")

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := repositories.InitPostgresSchema(conn); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema initialized")

	if err := repositories.SeedPostgresFromFiles(conn, parcelPath, truckPath, mapPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("Seeded fleet data parcels=%s trucks=%s map=%s", parcelPath, truckPath, mapPath)
}
