package services

import (
	"fmt"
	"math/rand"
	"parcel-scheduling-service/internal/domain"
	"time"
)

// RandomScheduler assigns each parcel to a uniformly random truck among
// those with enough free space.
type RandomScheduler struct {
	rng *rand.Rand
}

// NewRandomScheduler builds a scheduler around the given random source.
// Tests inject a seeded source for reproducible runs; passing nil falls
// back to a time-seeded one.
func NewRandomScheduler(rng *rand.Rand) *RandomScheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomScheduler{rng: rng}
}

func (s *RandomScheduler) Schedule(parcels []*domain.Parcel, trucks []*domain.Truck) []*domain.Parcel {
	order := make([]*domain.Parcel, len(parcels))
	copy(order, parcels)
	s.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	var unscheduled []*domain.Parcel
	for _, p := range order {
		var feasible []*domain.Truck
		for _, t := range trucks {
			if t.Available() >= p.Volume {
				feasible = append(feasible, t)
			}
		}

		if len(feasible) == 0 {
			unscheduled = append(unscheduled, p)
			continue
		}

		chosen := feasible[s.rng.Intn(len(feasible))]
		if err := chosen.Pack(p); err != nil {
			// Unreachable after the capacity filter.
			panic(fmt.Sprintf("random scheduler: pack onto feasible truck: %v", err))
		}
	}

	return unscheduled
}
