package services

import (
	"fmt"
	"parcel-scheduling-service/internal/container"
	"parcel-scheduling-service/internal/domain"
)

// ParcelOrder selects the order in which the greedy scheduler processes
// parcels.
type ParcelOrder string

const (
	VolumeAscending       ParcelOrder = "volume_asc"
	VolumeDescending      ParcelOrder = "volume_desc"
	DestinationAscending  ParcelOrder = "destination_asc"
	DestinationDescending ParcelOrder = "destination_desc"
)

// TruckChoice selects which eligible truck receives a parcel.
type TruckChoice string

const (
	MostSpace  TruckChoice = "most_space"
	LeastSpace TruckChoice = "least_space"
)

func lighter(a, b *domain.Parcel) bool { return a.Volume < b.Volume }
func heavier(a, b *domain.Parcel) bool { return a.Volume > b.Volume }

func earlierDestination(a, b *domain.Parcel) bool { return a.Destination < b.Destination }
func laterDestination(a, b *domain.Parcel) bool   { return a.Destination > b.Destination }

func mostSpace(a, b *domain.Truck) bool  { return a.Available() > b.Available() }
func leastSpace(a, b *domain.Truck) bool { return a.Available() < b.Available() }

// GreedyScheduler assigns each parcel to the single best truck under a
// configurable ordering and selection policy. For fixed inputs and
// configuration the result is fully deterministic.
type GreedyScheduler struct {
	parcelPriority container.HigherPriority[*domain.Parcel]
	truckPriority  container.HigherPriority[*domain.Truck]
}

// NewGreedyScheduler validates the configuration and returns an error
// for unrecognized values before any parcel is processed.
func NewGreedyScheduler(order ParcelOrder, choice TruckChoice) (*GreedyScheduler, error) {
	s := &GreedyScheduler{}

	switch order {
	case VolumeAscending:
		s.parcelPriority = lighter
	case VolumeDescending:
		s.parcelPriority = heavier
	case DestinationAscending:
		s.parcelPriority = earlierDestination
	case DestinationDescending:
		s.parcelPriority = laterDestination
	default:
		return nil, fmt.Errorf("greedy scheduler: unrecognized parcel order %q", order)
	}

	switch choice {
	case MostSpace:
		s.truckPriority = mostSpace
	case LeastSpace:
		s.truckPriority = leastSpace
	default:
		return nil, fmt.Errorf("greedy scheduler: unrecognized truck choice %q", choice)
	}

	return s, nil
}

// Schedule processes parcels in configured priority order. For each
// parcel the eligible set is the capacity-feasible trucks, narrowed to
// those whose route already ends at the parcel's destination when any
// exist: continuing a route always beats opening a new leg. The best
// eligible truck wins under the configured space policy, with exact
// ties going to the earliest truck in input order.
func (s *GreedyScheduler) Schedule(parcels []*domain.Parcel, trucks []*domain.Truck) []*domain.Parcel {
	queue := container.NewPriorityQueue(s.parcelPriority)
	for _, p := range parcels {
		queue.Add(p)
	}

	var unscheduled []*domain.Parcel
	for !queue.IsEmpty() {
		p := queue.Remove()

		eligible := eligibleTrucks(p, trucks)
		if len(eligible) == 0 {
			unscheduled = append(unscheduled, p)
			continue
		}

		// FIFO tie-break in the queue keeps input order among equals.
		candidates := container.NewPriorityQueue(s.truckPriority)
		for _, t := range eligible {
			candidates.Add(t)
		}
		best := candidates.Remove()

		if err := best.Pack(p); err != nil {
			// Unreachable after the capacity filter.
			panic(fmt.Sprintf("greedy scheduler: pack onto eligible truck: %v", err))
		}
	}

	return unscheduled
}

// eligibleTrucks applies the two-stage filter: capacity first, then
// destination affinity within the survivors.
func eligibleTrucks(p *domain.Parcel, trucks []*domain.Truck) []*domain.Truck {
	var feasible []*domain.Truck
	for _, t := range trucks {
		if t.Available() >= p.Volume {
			feasible = append(feasible, t)
		}
	}

	var continuing []*domain.Truck
	for _, t := range feasible {
		if t.Route[len(t.Route)-1] == p.Destination {
			continuing = append(continuing, t)
		}
	}

	if len(continuing) > 0 {
		return continuing
	}
	return feasible
}
