package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema initializes the postgres database schema. It
// mirrors the SQLite schema so SQLFleetRepository reads either one.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS parcels (
			parcel_id INTEGER PRIMARY KEY,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			volume INTEGER NOT NULL CHECK (volume > 0)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS trucks (
			truck_id INTEGER PRIMARY KEY,
			capacity INTEGER NOT NULL CHECK (capacity > 0)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS distances (
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			distance INTEGER NOT NULL CHECK (distance >= 0),
			PRIMARY KEY (origin, destination)
		);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}

// SeedPostgresFromFiles populates the postgres database with fleet data
// parsed from the CSV data files, upserting on id conflicts.
func SeedPostgresFromFiles(db *sql.DB, parcelPath, truckPath, mapPath string) error {
	src := &FileFleetRepository{
		ParcelPath: parcelPath,
		TruckPath:  truckPath,
		MapPath:    mapPath,
	}

	ctx := context.Background()

	parcels, err := src.ListParcels(ctx)
	if err != nil {
		return fmt.Errorf("seed postgres fleet: %w", err)
	}
	trucks, err := src.ListTrucks(ctx, "")
	if err != nil {
		return fmt.Errorf("seed postgres fleet: %w", err)
	}
	entries, err := src.ListDistances(ctx)
	if err != nil {
		return fmt.Errorf("seed postgres fleet: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed postgres fleet: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	parcelStmt, err := tx.Prepare(`
	INSERT INTO parcels (parcel_id, source, destination, volume)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (parcel_id) DO UPDATE
	SET source = EXCLUDED.source,
		destination = EXCLUDED.destination,
		volume = EXCLUDED.volume;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres fleet: prepare parcel insert: %w", err)
	}
	defer parcelStmt.Close()

	for _, p := range parcels {
		if _, err := parcelStmt.Exec(p.ParcelID, p.Source, p.Destination, p.Volume); err != nil {
			return fmt.Errorf("seed postgres fleet: insert parcel_id=%d: %w", p.ParcelID, err)
		}
	}

	truckStmt, err := tx.Prepare(`
	INSERT INTO trucks (truck_id, capacity)
	VALUES ($1, $2)
	ON CONFLICT (truck_id) DO UPDATE
	SET capacity = EXCLUDED.capacity;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres fleet: prepare truck insert: %w", err)
	}
	defer truckStmt.Close()

	for _, t := range trucks {
		if _, err := truckStmt.Exec(t.TruckID, t.Capacity); err != nil {
			return fmt.Errorf("seed postgres fleet: insert truck_id=%d: %w", t.TruckID, err)
		}
	}

	distStmt, err := tx.Prepare(`
	INSERT INTO distances (origin, destination, distance)
	VALUES ($1, $2, $3)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance = EXCLUDED.distance;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres fleet: prepare distance insert: %w", err)
	}
	defer distStmt.Close()

	for _, e := range entries {
		if _, err := distStmt.Exec(e.From, e.To, e.Distance); err != nil {
			return fmt.Errorf("seed postgres fleet: insert distance %s->%s: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres fleet: commit tx: %w", err)
	}

	return nil
}
