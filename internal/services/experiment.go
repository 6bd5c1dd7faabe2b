package services

import (
	"context"
	"fmt"
	"math/rand"
	"parcel-scheduling-service/internal/distmap"
	"parcel-scheduling-service/internal/domain"
	"parcel-scheduling-service/internal/platform/obs"
	"parcel-scheduling-service/internal/ports"

	"github.com/google/uuid"
)

const (
	AlgorithmRandom = "random"
	AlgorithmGreedy = "greedy"
)

// ExperimentConfig selects the scheduling algorithm and its parameters
// for one run. ParcelOrder and TruckChoice apply only to the greedy
// algorithm; Seed only to the random one (nil means time-seeded).
type ExperimentConfig struct {
	Algorithm   string      `json:"algorithm" yaml:"algorithm"`
	ParcelOrder ParcelOrder `json:"parcel_order" yaml:"parcel_order"`
	TruckChoice TruckChoice `json:"truck_choice" yaml:"truck_choice"`
	Depot       string      `json:"depot_location" yaml:"depot_location"`
	Seed        *int64      `json:"seed" yaml:"seed"`
}

// Report holds the statistics of a completed experiment run.
type Report struct {
	RunID        string  `json:"run_id"`
	FleetSize    int     `json:"fleet"`
	UnusedTrucks int     `json:"unused_trucks"`
	AvgDistance  float64 `json:"avg_distance"`
	AvgFullness  float64 `json:"avg_fullness"`
	UnusedSpace  int     `json:"unused_space"`
	Unscheduled  int     `json:"unscheduled"`
}

// Experiment runs one scheduling pass over a fleet and reports on it.
type Experiment struct {
	RunID     string
	Scheduler Scheduler
	Fleet     *domain.Fleet
	Parcels   []*domain.Parcel
	Lookup    domain.DistanceLookup

	unscheduled []*domain.Parcel
}

// NewExperiment validates the configuration and fleet data and picks
// the scheduler. Malformed configuration fails here, before any parcel
// is processed.
func NewExperiment(
	cfg ExperimentConfig,
	parcels []*domain.Parcel,
	fleet *domain.Fleet,
	lookup domain.DistanceLookup,
) (*Experiment, error) {
	if fleet.NumTrucks() == 0 {
		return nil, fmt.Errorf("new experiment: fleet has no trucks")
	}

	if err := validateFleetData(parcels, fleet); err != nil {
		return nil, fmt.Errorf("new experiment: %w", err)
	}

	var scheduler Scheduler
	switch cfg.Algorithm {
	case AlgorithmRandom:
		var rng *rand.Rand
		if cfg.Seed != nil {
			rng = rand.New(rand.NewSource(*cfg.Seed))
		}
		scheduler = NewRandomScheduler(rng)
	case AlgorithmGreedy:
		greedy, err := NewGreedyScheduler(cfg.ParcelOrder, cfg.TruckChoice)
		if err != nil {
			return nil, fmt.Errorf("new experiment: %w", err)
		}
		scheduler = greedy
	default:
		return nil, fmt.Errorf("new experiment: unrecognized algorithm %q", cfg.Algorithm)
	}

	return &Experiment{
		RunID:     uuid.NewString(),
		Scheduler: scheduler,
		Fleet:     fleet,
		Parcels:   parcels,
		Lookup:    lookup,
	}, nil
}

// LoadExperiment builds an experiment from repository data.
func LoadExperiment(ctx context.Context, cfg ExperimentConfig, repo ports.FleetRepository) (*Experiment, error) {
	parcels, err := repo.ListParcels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load experiment: list parcels: %w", err)
	}

	trucks, err := repo.ListTrucks(ctx, cfg.Depot)
	if err != nil {
		return nil, fmt.Errorf("load experiment: list trucks: %w", err)
	}

	entries, err := repo.ListDistances(ctx)
	if err != nil {
		return nil, fmt.Errorf("load experiment: list distances: %w", err)
	}

	m := distmap.New()
	for _, e := range entries {
		m.Add(e.From, e.To, e.Distance)
	}

	fleet := domain.NewFleet(cfg.Depot)
	for _, t := range trucks {
		fleet.AddTruck(t)
	}

	return NewExperiment(cfg, parcels, fleet, m)
}

// Run schedules all parcels and computes the report. Truck state is
// mutated in place, so a given Experiment runs once.
func (e *Experiment) Run(ctx context.Context) (report *Report, err error) {
	defer obs.Time(ctx, "experiment.run")(&err)

	e.unscheduled = e.Scheduler.Schedule(e.Parcels, e.Fleet.Trucks)

	avgDistance, err := e.Fleet.AverageDistanceTravelled(e.Lookup)
	if err != nil {
		return nil, fmt.Errorf("run experiment: %w", err)
	}

	return &Report{
		RunID:        e.RunID,
		FleetSize:    e.Fleet.NumTrucks(),
		UnusedTrucks: e.Fleet.NumTrucks() - e.Fleet.NumNonemptyTrucks(),
		AvgDistance:  avgDistance,
		AvgFullness:  e.Fleet.AverageFullness(),
		UnusedSpace:  e.Fleet.TotalUnusedSpace(),
		Unscheduled:  len(e.unscheduled),
	}, nil
}

// Unscheduled returns the parcels the last Run left unassigned.
func (e *Experiment) Unscheduled() []*domain.Parcel { return e.unscheduled }

func validateFleetData(parcels []*domain.Parcel, fleet *domain.Fleet) error {
	parcelIDs := make(map[int]struct{}, len(parcels))
	for _, p := range parcels {
		if _, dup := parcelIDs[p.ParcelID]; dup {
			return fmt.Errorf("duplicate parcel id %d", p.ParcelID)
		}
		parcelIDs[p.ParcelID] = struct{}{}

		if p.Destination == fleet.Depot {
			return fmt.Errorf("parcel %d is destined for the depot %q", p.ParcelID, fleet.Depot)
		}
	}

	truckIDs := make(map[int]struct{}, len(fleet.Trucks))
	for _, t := range fleet.Trucks {
		if _, dup := truckIDs[t.TruckID]; dup {
			return fmt.Errorf("duplicate truck id %d", t.TruckID)
		}
		truckIDs[t.TruckID] = struct{}{}
	}

	return nil
}
