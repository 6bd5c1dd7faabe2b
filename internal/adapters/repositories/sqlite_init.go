package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema initializes the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createParcelsQuery := `
	CREATE TABLE IF NOT EXISTS parcels (
		parcel_id INTEGER PRIMARY KEY,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		volume INTEGER NOT NULL CHECK (volume > 0)
	);
	`

	createTrucksQuery := `
	CREATE TABLE IF NOT EXISTS trucks (
		truck_id INTEGER PRIMARY KEY,
		capacity INTEGER NOT NULL CHECK (capacity > 0)
	);
	`

	createDistancesQuery := `
	CREATE TABLE IF NOT EXISTS distances (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance INTEGER NOT NULL CHECK (distance >= 0),
		PRIMARY KEY (origin, destination)
	);
	`

	statements := []string{
		createParcelsQuery,
		createTrucksQuery,
		createDistancesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// SeedFromFiles populates the SQLite database with fleet data parsed
// from the CSV data files. Existing rows with matching ids are replaced.
func SeedFromFiles(db *sql.DB, parcelPath, truckPath, mapPath string) error {
	src := &FileFleetRepository{
		ParcelPath: parcelPath,
		TruckPath:  truckPath,
		MapPath:    mapPath,
	}

	ctx := context.Background()

	parcels, err := src.ListParcels(ctx)
	if err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}
	trucks, err := src.ListTrucks(ctx, "")
	if err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}
	entries, err := src.ListDistances(ctx)
	if err != nil {
		return fmt.Errorf("seed fleet: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	parcelStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO parcels (parcel_id, source, destination, volume)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare parcel insert: %w", err)
	}
	defer parcelStmt.Close()

	for _, p := range parcels {
		if _, err := parcelStmt.Exec(p.ParcelID, p.Source, p.Destination, p.Volume); err != nil {
			return fmt.Errorf("seed fleet: insert parcel_id=%d: %w", p.ParcelID, err)
		}
	}

	truckStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO trucks (truck_id, capacity)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare truck insert: %w", err)
	}
	defer truckStmt.Close()

	for _, t := range trucks {
		if _, err := truckStmt.Exec(t.TruckID, t.Capacity); err != nil {
			return fmt.Errorf("seed fleet: insert truck_id=%d: %w", t.TruckID, err)
		}
	}

	distStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO distances (origin, destination, distance)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed fleet: prepare distance insert: %w", err)
	}
	defer distStmt.Close()

	for _, e := range entries {
		if _, err := distStmt.Exec(e.From, e.To, e.Distance); err != nil {
			return fmt.Errorf("seed fleet: insert distance %s->%s: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed fleet: commit tx: %w", err)
	}

	return nil
}
