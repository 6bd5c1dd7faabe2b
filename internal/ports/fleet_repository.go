package ports

import (
	"context"
	"parcel-scheduling-service/internal/domain"
)

// A directed city-to-city distance row from a data source.
type DistanceEntry struct {
	From     string
	To       string
	Distance int
}

// Port: a boundary for retrieving fleet data from a data source.
// Implementations validate id uniqueness on load; schedulers assume it.
type FleetRepository interface {
	// Retrieve all parcels available for scheduling.
	ListParcels(ctx context.Context) ([]*domain.Parcel, error)
	// Retrieve all trucks, each starting its route at depot.
	ListTrucks(ctx context.Context, depot string) ([]*domain.Truck, error)
	// Retrieve all directed distance rows.
	ListDistances(ctx context.Context) ([]DistanceEntry, error)
}
