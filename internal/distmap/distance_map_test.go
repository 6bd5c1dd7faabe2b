package distmap

import "testing"

func TestDistanceSymmetric(t *testing.T) {
	m := New()
	m.AddDistance("Toronto", "Ajax", 9)

	d, err := m.Distance("Toronto", "Ajax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 9 {
		t.Fatalf("Toronto->Ajax = %d, want 9", d)
	}

	d, err = m.Distance("Ajax", "Toronto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 9 {
		t.Fatalf("Ajax->Toronto = %d, want 9", d)
	}
}

func TestDistanceAsymmetric(t *testing.T) {
	m := New()
	m.Add("Toronto", "Hamilton", 9)
	m.Add("Hamilton", "Toronto", 11)

	d, err := m.Distance("Toronto", "Hamilton")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 9 {
		t.Fatalf("Toronto->Hamilton = %d, want 9", d)
	}

	d, err = m.Distance("Hamilton", "Toronto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 11 {
		t.Fatalf("Hamilton->Toronto = %d, want 11", d)
	}
}

func TestDistanceSameCity(t *testing.T) {
	m := New()
	d, err := m.Distance("Toronto", "Toronto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("Toronto->Toronto = %d, want 0", d)
	}
}

func TestDistanceUnknownPair(t *testing.T) {
	m := New()
	m.AddDistance("Toronto", "Ajax", 9)

	if _, err := m.Distance("Toronto", "Windsor"); err == nil {
		t.Fatal("expected error for unknown pair, got nil")
	}
}
