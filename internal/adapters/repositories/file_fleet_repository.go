package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"parcel-scheduling-service/internal/domain"
	"parcel-scheduling-service/internal/ports"
	"strconv"
	"strings"
)

// FileFleetRepository reads fleet data from CSV files.
//
// Formats, one record per line:
//
//	parcels: id, source, destination, volume
//	trucks:  id, capacity
//	map:     city1, city2, distance[, reverse_distance]
//
// A map row without a reverse distance applies the same distance to
// both directions.
type FileFleetRepository struct {
	ParcelPath string
	TruckPath  string
	MapPath    string
}

func (r *FileFleetRepository) ListParcels(ctx context.Context) ([]*domain.Parcel, error) {
	records, err := readCSV(r.ParcelPath)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	seen := make(map[int]struct{}, len(records))
	parcels := make([]*domain.Parcel, 0, len(records))
	for i, rec := range records {
		if len(rec) != 4 {
			return nil, fmt.Errorf("list parcels: line %d: want 4 fields, got %d", i+1, len(rec))
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("list parcels: line %d: parse id: %w", i+1, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("list parcels: line %d: duplicate parcel id %d", i+1, id)
		}
		seen[id] = struct{}{}

		source := strings.TrimSpace(rec[1])
		dest := strings.TrimSpace(rec[2])
		if source == "" || dest == "" {
			return nil, fmt.Errorf("list parcels: line %d: empty source or destination", i+1)
		}

		volume, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			return nil, fmt.Errorf("list parcels: line %d: parse volume: %w", i+1, err)
		}
		if volume <= 0 {
			return nil, fmt.Errorf("list parcels: line %d: volume must be positive, got %d", i+1, volume)
		}

		parcels = append(parcels, &domain.Parcel{
			ParcelID:    id,
			Volume:      volume,
			Source:      source,
			Destination: dest,
		})
	}

	return parcels, nil
}

func (r *FileFleetRepository) ListTrucks(ctx context.Context, depot string) ([]*domain.Truck, error) {
	records, err := readCSV(r.TruckPath)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}

	seen := make(map[int]struct{}, len(records))
	trucks := make([]*domain.Truck, 0, len(records))
	for i, rec := range records {
		if len(rec) != 2 {
			return nil, fmt.Errorf("list trucks: line %d: want 2 fields, got %d", i+1, len(rec))
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("list trucks: line %d: parse id: %w", i+1, err)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("list trucks: line %d: duplicate truck id %d", i+1, id)
		}
		seen[id] = struct{}{}

		capacity, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("list trucks: line %d: parse capacity: %w", i+1, err)
		}
		if capacity <= 0 {
			return nil, fmt.Errorf("list trucks: line %d: capacity must be positive, got %d", i+1, capacity)
		}

		trucks = append(trucks, domain.NewTruck(id, capacity, depot))
	}

	return trucks, nil
}

func (r *FileFleetRepository) ListDistances(ctx context.Context) ([]ports.DistanceEntry, error) {
	records, err := readCSV(r.MapPath)
	if err != nil {
		return nil, fmt.Errorf("list distances: %w", err)
	}

	entries := make([]ports.DistanceEntry, 0, 2*len(records))
	for i, rec := range records {
		if len(rec) != 3 && len(rec) != 4 {
			return nil, fmt.Errorf("list distances: line %d: want 3 or 4 fields, got %d", i+1, len(rec))
		}

		city1 := strings.TrimSpace(rec[0])
		city2 := strings.TrimSpace(rec[1])
		if city1 == "" || city2 == "" {
			return nil, fmt.Errorf("list distances: line %d: empty city name", i+1)
		}

		forward, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("list distances: line %d: parse distance: %w", i+1, err)
		}

		backward := forward
		if len(rec) == 4 {
			backward, err = strconv.Atoi(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("list distances: line %d: parse reverse distance: %w", i+1, err)
			}
		}

		if forward < 0 || backward < 0 {
			return nil, fmt.Errorf("list distances: line %d: distances must be non-negative", i+1)
		}

		entries = append(entries,
			ports.DistanceEntry{From: city1, To: city2, Distance: forward},
			ports.DistanceEntry{From: city2, To: city1, Distance: backward},
		)
	}

	return entries, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	return records, nil
}
