package domain

import (
	"fmt"
	"math"
)

// Delivery truck aggregate holding packed parcels and the route they imply.
//
// The route always starts at the depot and grows only through Pack: a
// parcel's destination is appended when it differs from the current last
// stop, so consecutive duplicates are suppressed but a city may reappear
// later in the route. The return leg to the depot is implicit and applied
// at reporting time, not stored.
type Truck struct {
	TruckID  int
	Capacity int
	Parcels  []*Parcel
	Route    []string

	used int
}

func NewTruck(id int, capacity int, depot string) *Truck {
	return &Truck{
		TruckID:  id,
		Capacity: capacity,
		Route:    []string{depot},
	}
}

// Pack loads a single parcel onto the truck and extends the route.
// Attempting to exceed capacity is a precondition violation on the
// caller's part and returns an error without mutating the truck.
func (t *Truck) Pack(p *Parcel) error {
	if p.Volume > t.Capacity-t.used {
		return fmt.Errorf(
			"pack truck: truck %d cannot fit parcel %d (available=%d volume=%d)",
			t.TruckID, p.ParcelID, t.Capacity-t.used, p.Volume,
		)
	}

	t.Parcels = append(t.Parcels, p)
	t.used += p.Volume

	if t.Route[len(t.Route)-1] != p.Destination {
		t.Route = append(t.Route, p.Destination)
	}

	return nil
}

// UsedVolume returns the total volume of the packed parcels.
func (t *Truck) UsedVolume() int { return t.used }

// Available returns the remaining volume capacity.
func (t *Truck) Available() int { return t.Capacity - t.used }

// Fullness returns the percentage of used space, rounded to one decimal.
func (t *Truck) Fullness() float64 {
	percent := float64(t.used) / float64(t.Capacity) * 100
	return math.Round(percent*10) / 10
}
