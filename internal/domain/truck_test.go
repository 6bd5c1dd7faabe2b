package domain

import "testing"

func TestTruckPackRouteConstruction(t *testing.T) {
	truck := NewTruck(1, 100, "Toronto")

	parcels := []*Parcel{
		{ParcelID: 1, Volume: 10, Source: "Toronto", Destination: "Windsor"},
		{ParcelID: 2, Volume: 10, Source: "Toronto", Destination: "Windsor"},
		{ParcelID: 3, Volume: 10, Source: "Toronto", Destination: "London"},
		{ParcelID: 4, Volume: 10, Source: "Toronto", Destination: "Windsor"},
	}

	for _, p := range parcels {
		if err := truck.Pack(p); err != nil {
			t.Fatalf("pack parcel %d: unexpected error: %v", p.ParcelID, err)
		}
	}

	// Consecutive duplicates are suppressed; non-consecutive revisits are not.
	want := []string{"Toronto", "Windsor", "London", "Windsor"}
	if len(truck.Route) != len(want) {
		t.Fatalf("route = %v, want %v", truck.Route, want)
	}
	for i, city := range want {
		if truck.Route[i] != city {
			t.Fatalf("route[%d] = %q, want %q (route %v)", i, truck.Route[i], city, truck.Route)
		}
	}

	if truck.UsedVolume() != 40 {
		t.Fatalf("used volume = %d, want 40", truck.UsedVolume())
	}
}

func TestTruckPackCapacityViolation(t *testing.T) {
	truck := NewTruck(1, 10, "Toronto")

	if err := truck.Pack(&Parcel{ParcelID: 1, Volume: 8, Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := truck.Pack(&Parcel{ParcelID: 2, Volume: 3, Destination: "Hamilton"})
	if err == nil {
		t.Fatal("expected capacity error, got nil")
	}

	// A rejected parcel must leave the truck untouched.
	if truck.UsedVolume() != 8 {
		t.Fatalf("used volume = %d, want 8", truck.UsedVolume())
	}
	if len(truck.Parcels) != 1 {
		t.Fatalf("parcels = %d, want 1", len(truck.Parcels))
	}
	if len(truck.Route) != 2 {
		t.Fatalf("route = %v, want depot plus one stop", truck.Route)
	}
}

func TestTruckPackExactFit(t *testing.T) {
	truck := NewTruck(1, 10, "Toronto")

	if err := truck.Pack(&Parcel{ParcelID: 1, Volume: 10, Destination: "Hamilton"}); err != nil {
		t.Fatalf("exact-fit pack failed: %v", err)
	}
	if truck.Available() != 0 {
		t.Fatalf("available = %d, want 0", truck.Available())
	}
}

func TestTruckFullness(t *testing.T) {
	truck := NewTruck(1234, 100, "Toronto")
	if err := truck.Pack(&Parcel{ParcelID: 1, Volume: 5, Source: "Buffalo", Destination: "Hamilton"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := truck.Fullness(); got != 5.0 {
		t.Fatalf("fullness = %v, want 5.0", got)
	}
}
