package domain

import "fmt"

// Contract for looking up the distance between two named cities.
// Implementations return an error for pairs they do not know about.
type DistanceLookup interface {
	Distance(city1, city2 string) (int, error)
}

// A fleet of trucks making deliveries out of a single depot city.
type Fleet struct {
	Depot  string
	Trucks []*Truck
}

func NewFleet(depot string) *Fleet {
	return &Fleet{Depot: depot}
}

// AddTruck adds truck to the fleet.
// Precondition: no truck with the same ID has already been added.
func (f *Fleet) AddTruck(t *Truck) {
	f.Trucks = append(f.Trucks, t)
}

func (f *Fleet) NumTrucks() int { return len(f.Trucks) }

// NumNonemptyTrucks returns the number of trucks carrying at least one parcel.
func (f *Fleet) NumNonemptyTrucks() int {
	count := 0
	for _, t := range f.Trucks {
		if t.UsedVolume() > 0 {
			count++
		}
	}
	return count
}

// ParcelAllocations maps each truck ID to the IDs of the parcels packed
// onto it, in packing order.
func (f *Fleet) ParcelAllocations() map[int][]int {
	allocations := make(map[int][]int, len(f.Trucks))
	for _, t := range f.Trucks {
		ids := make([]int, 0, len(t.Parcels))
		for _, p := range t.Parcels {
			ids = append(ids, p.ParcelID)
		}
		allocations[t.TruckID] = ids
	}
	return allocations
}

// TotalUnusedSpace returns the unused capacity summed over all non-empty
// trucks.
func (f *Fleet) TotalUnusedSpace() int {
	unused := 0
	for _, t := range f.Trucks {
		if t.UsedVolume() > 0 {
			unused += t.Available()
		}
	}
	return unused
}

// AverageFullness returns the average percent fullness over non-empty
// trucks, or 0 when every truck is empty.
func (f *Fleet) AverageFullness() float64 {
	total := 0.0
	count := 0
	for _, t := range f.Trucks {
		if t.UsedVolume() > 0 {
			total += t.Fullness()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// TruckDistance returns the distance travelled by a single truck: each
// consecutive route leg plus the implicit return leg to the depot. A
// truck that never left the depot travels 0.
func (f *Fleet) TruckDistance(t *Truck, lookup DistanceLookup) (int, error) {
	if len(t.Route) < 2 {
		return 0, nil
	}

	total := 0
	for i := 0; i < len(t.Route)-1; i++ {
		d, err := lookup.Distance(t.Route[i], t.Route[i+1])
		if err != nil {
			return 0, fmt.Errorf("truck distance: truck %d: %w", t.TruckID, err)
		}
		total += d
	}

	back, err := lookup.Distance(t.Route[len(t.Route)-1], f.Depot)
	if err != nil {
		return 0, fmt.Errorf("truck distance: truck %d return leg: %w", t.TruckID, err)
	}

	return total + back, nil
}

// TotalDistanceTravelled sums TruckDistance over the whole fleet.
func (f *Fleet) TotalDistanceTravelled(lookup DistanceLookup) (int, error) {
	total := 0
	for _, t := range f.Trucks {
		d, err := f.TruckDistance(t, lookup)
		if err != nil {
			return 0, fmt.Errorf("total distance travelled: %w", err)
		}
		total += d
	}
	return total, nil
}

// AverageDistanceTravelled averages TruckDistance over trucks that
// travelled a non-zero distance, or returns 0 when none did.
func (f *Fleet) AverageDistanceTravelled(lookup DistanceLookup) (float64, error) {
	total := 0
	count := 0
	for _, t := range f.Trucks {
		d, err := f.TruckDistance(t, lookup)
		if err != nil {
			return 0, fmt.Errorf("average distance travelled: %w", err)
		}
		if d > 0 {
			total += d
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(total) / float64(count), nil
}
