package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFileFleetRepositoryListParcels(t *testing.T) {
	dir := t.TempDir()
	repo := &FileFleetRepository{
		ParcelPath: writeFile(t, dir, "parcels.csv",
			"1, Toronto, Windsor, 5\n2, Hamilton, London, 30\n"),
	}

	parcels, err := repo.ListParcels(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(parcels) != 2 {
		t.Fatalf("parcels = %d, want 2", len(parcels))
	}
	p := parcels[0]
	if p.ParcelID != 1 || p.Source != "Toronto" || p.Destination != "Windsor" || p.Volume != 5 {
		t.Fatalf("parcel[0] = %+v", p)
	}
	if parcels[1].Volume != 30 {
		t.Fatalf("parcel[1].Volume = %d, want 30", parcels[1].Volume)
	}
}

func TestFileFleetRepositoryDuplicateParcelID(t *testing.T) {
	dir := t.TempDir()
	repo := &FileFleetRepository{
		ParcelPath: writeFile(t, dir, "parcels.csv",
			"1, Toronto, Windsor, 5\n1, Hamilton, London, 30\n"),
	}

	if _, err := repo.ListParcels(context.Background()); err == nil {
		t.Fatal("expected duplicate id error, got nil")
	}
}

func TestFileFleetRepositoryListTrucks(t *testing.T) {
	dir := t.TempDir()
	repo := &FileFleetRepository{
		TruckPath: writeFile(t, dir, "trucks.csv", "1423, 100\n5912, 50\n"),
	}

	trucks, err := repo.ListTrucks(context.Background(), "Toronto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(trucks) != 2 {
		t.Fatalf("trucks = %d, want 2", len(trucks))
	}
	if trucks[0].TruckID != 1423 || trucks[0].Capacity != 100 {
		t.Fatalf("truck[0] = %+v", trucks[0])
	}
	if len(trucks[0].Route) != 1 || trucks[0].Route[0] != "Toronto" {
		t.Fatalf("truck[0].Route = %v, want [Toronto]", trucks[0].Route)
	}
}

func TestFileFleetRepositoryInvalidCapacity(t *testing.T) {
	dir := t.TempDir()
	repo := &FileFleetRepository{
		TruckPath: writeFile(t, dir, "trucks.csv", "1, 0\n"),
	}

	if _, err := repo.ListTrucks(context.Background(), "Toronto"); err == nil {
		t.Fatal("expected capacity error, got nil")
	}
}

func TestFileFleetRepositoryListDistances(t *testing.T) {
	dir := t.TempDir()
	repo := &FileFleetRepository{
		MapPath: writeFile(t, dir, "map.csv",
			"Toronto, Hamilton, 9\nToronto, Windsor, 370, 380\n"),
	}

	entries, err := repo.ListDistances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each row yields both directions.
	if len(entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(entries))
	}

	byPair := make(map[string]int, len(entries))
	for _, e := range entries {
		byPair[e.From+"|"+e.To] = e.Distance
	}

	if byPair["Toronto|Hamilton"] != 9 || byPair["Hamilton|Toronto"] != 9 {
		t.Fatalf("symmetric pair wrong: %v", byPair)
	}
	if byPair["Toronto|Windsor"] != 370 || byPair["Windsor|Toronto"] != 380 {
		t.Fatalf("asymmetric pair wrong: %v", byPair)
	}
}

func TestFileFleetRepositoryMissingFile(t *testing.T) {
	repo := &FileFleetRepository{ParcelPath: filepath.Join(t.TempDir(), "absent.csv")}
	if _, err := repo.ListParcels(context.Background()); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
