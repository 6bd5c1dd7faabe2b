package domain

import (
	"parcel-scheduling-service/internal/distmap"
	"testing"
)

func TestFleetCounts(t *testing.T) {
	f := NewFleet("Toronto")

	t1 := NewTruck(1423, 10, "Toronto")
	t2 := NewTruck(5912, 20, "Toronto")
	t3 := NewTruck(1111, 50, "Toronto")
	f.AddTruck(t1)
	f.AddTruck(t2)
	f.AddTruck(t3)

	if err := t1.Pack(&Parcel{ParcelID: 1, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := t2.Pack(&Parcel{ParcelID: 2, Volume: 2, Destination: "Windsor"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.NumTrucks(); got != 3 {
		t.Fatalf("NumTrucks = %d, want 3", got)
	}
	if got := f.NumNonemptyTrucks(); got != 2 {
		t.Fatalf("NumNonemptyTrucks = %d, want 2", got)
	}
}

func TestFleetParcelAllocations(t *testing.T) {
	f := NewFleet("Toronto")

	t1 := NewTruck(1423, 10, "Toronto")
	t2 := NewTruck(1333, 10, "Toronto")
	f.AddTruck(t1)
	f.AddTruck(t2)

	for _, p := range []*Parcel{
		{ParcelID: 27, Volume: 5, Destination: "Hamilton"},
		{ParcelID: 12, Volume: 5, Destination: "Hamilton"},
	} {
		if err := t1.Pack(p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := t2.Pack(&Parcel{ParcelID: 28, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	allocs := f.ParcelAllocations()
	if got := allocs[1423]; len(got) != 2 || got[0] != 27 || got[1] != 12 {
		t.Fatalf("allocations[1423] = %v, want [27 12]", got)
	}
	if got := allocs[1333]; len(got) != 1 || got[0] != 28 {
		t.Fatalf("allocations[1333] = %v, want [28]", got)
	}
}

func TestFleetSpaceAndFullness(t *testing.T) {
	f := NewFleet("Toronto")

	if got := f.TotalUnusedSpace(); got != 0 {
		t.Fatalf("TotalUnusedSpace on empty fleet = %d, want 0", got)
	}
	if got := f.AverageFullness(); got != 0 {
		t.Fatalf("AverageFullness on empty fleet = %v, want 0", got)
	}

	t1 := NewTruck(1423, 1000, "Toronto")
	f.AddTruck(t1)
	if err := t1.Pack(&Parcel{ParcelID: 1, Volume: 5, Source: "Buffalo", Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// An empty truck contributes to neither statistic.
	f.AddTruck(NewTruck(9, 500, "Toronto"))

	if got := f.TotalUnusedSpace(); got != 995 {
		t.Fatalf("TotalUnusedSpace = %d, want 995", got)
	}
	if got := f.AverageFullness(); got != 0.5 {
		t.Fatalf("AverageFullness = %v, want 0.5", got)
	}
}

func TestFleetDistanceTravelled(t *testing.T) {
	m := distmap.New()
	m.AddDistance("Toronto", "Hamilton", 9)

	f := NewFleet("Toronto")
	t1 := NewTruck(1423, 10, "Toronto")
	t2 := NewTruck(1333, 10, "Toronto")
	f.AddTruck(t1)
	f.AddTruck(t2)

	if err := t1.Pack(&Parcel{ParcelID: 1, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := t2.Pack(&Parcel{ParcelID: 2, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each truck drives depot -> Hamilton -> depot.
	total, err := f.TotalDistanceTravelled(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 36 {
		t.Fatalf("TotalDistanceTravelled = %d, want 36", total)
	}

	avg, err := f.AverageDistanceTravelled(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 18.0 {
		t.Fatalf("AverageDistanceTravelled = %v, want 18.0", avg)
	}
}

func TestFleetDistanceIdleTruck(t *testing.T) {
	m := distmap.New()
	m.AddDistance("Toronto", "Hamilton", 9)

	f := NewFleet("Toronto")
	busy := NewTruck(1, 10, "Toronto")
	idle := NewTruck(2, 10, "Toronto")
	f.AddTruck(busy)
	f.AddTruck(idle)

	if err := busy.Pack(&Parcel{ParcelID: 1, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := f.TruckDistance(idle, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("idle truck distance = %d, want 0", d)
	}

	avg, err := f.AverageDistanceTravelled(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 18.0 {
		t.Fatalf("AverageDistanceTravelled = %v, want 18.0 (idle truck excluded)", avg)
	}
}

func TestFleetDistanceMissingPair(t *testing.T) {
	f := NewFleet("Toronto")
	t1 := NewTruck(1, 10, "Toronto")
	f.AddTruck(t1)
	if err := t1.Pack(&Parcel{ParcelID: 1, Volume: 5, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.TotalDistanceTravelled(distmap.New()); err == nil {
		t.Fatal("expected error for missing distance pair, got nil")
	}
}
