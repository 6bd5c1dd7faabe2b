package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parcel-scheduling-service/internal/domain"
	"parcel-scheduling-service/internal/ports"
)

// SQLFleetRepository implements the FleetRepository port over a
// database/sql handle. The read queries are parameter-free, so the same
// implementation serves both the SQLite and the postgres schema.
type SQLFleetRepository struct{ DB *sql.DB }

func NewSQLFleetRepository(db *sql.DB) *SQLFleetRepository {
	return &SQLFleetRepository{DB: db}
}

func (s *SQLFleetRepository) ListParcels(ctx context.Context) ([]*domain.Parcel, error) {
	if s.DB == nil {
		return nil, errors.New("sql fleet repository: DB is nil")
	}

	query := `
	SELECT
		parcel_id,
		source,
		destination,
		volume
	FROM parcels
	ORDER BY parcel_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list parcels: query parcels table: %w", err)
	}
	defer rows.Close()

	parcels := make([]*domain.Parcel, 0, 64)
	for rows.Next() {
		var p domain.Parcel
		if err := rows.Scan(&p.ParcelID, &p.Source, &p.Destination, &p.Volume); err != nil {
			return nil, fmt.Errorf("list parcels: scan row: %w", err)
		}
		parcels = append(parcels, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parcels: row iteration: %w", err)
	}

	return parcels, nil
}

func (s *SQLFleetRepository) ListTrucks(ctx context.Context, depot string) ([]*domain.Truck, error) {
	if s.DB == nil {
		return nil, errors.New("sql fleet repository: DB is nil")
	}

	query := `
	SELECT
		truck_id,
		capacity
	FROM trucks
	ORDER BY truck_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trucks: query trucks table: %w", err)
	}
	defer rows.Close()

	trucks := make([]*domain.Truck, 0, 16)
	for rows.Next() {
		var id, capacity int
		if err := rows.Scan(&id, &capacity); err != nil {
			return nil, fmt.Errorf("list trucks: scan row: %w", err)
		}
		trucks = append(trucks, domain.NewTruck(id, capacity, depot))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trucks: row iteration: %w", err)
	}

	return trucks, nil
}

func (s *SQLFleetRepository) ListDistances(ctx context.Context) ([]ports.DistanceEntry, error) {
	if s.DB == nil {
		return nil, errors.New("sql fleet repository: DB is nil")
	}

	query := `
	SELECT
		origin,
		destination,
		distance
	FROM distances
	ORDER BY origin, destination;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list distances: query distances table: %w", err)
	}
	defer rows.Close()

	entries := make([]ports.DistanceEntry, 0, 128)
	for rows.Next() {
		var e ports.DistanceEntry
		if err := rows.Scan(&e.From, &e.To, &e.Distance); err != nil {
			return nil, fmt.Errorf("list distances: scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list distances: row iteration: %w", err)
	}

	return entries, nil
}
