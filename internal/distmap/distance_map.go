// Package distmap stores and looks up distances between named cities.
// It does no file or database reading of its own; data sources feed it
// through Add calls.
package distmap

import "fmt"

type cityPair struct {
	from string
	to   string
}

// In-memory map of directed city-to-city distances.
type Map struct {
	distances map[cityPair]int
}

func New() *Map {
	return &Map{distances: make(map[cityPair]int)}
}

// Add records the distance for a single direction.
func (m *Map) Add(from, to string, distance int) {
	m.distances[cityPair{from, to}] = distance
}

// AddDistance records the same distance for both directions.
func (m *Map) AddDistance(city1, city2 string, distance int) {
	m.Add(city1, city2, distance)
	m.Add(city2, city1, distance)
}

// Distance returns the recorded distance from city1 to city2. The
// distance from a city to itself is 0 unless recorded otherwise; any
// other unrecorded pair is an error.
func (m *Map) Distance(city1, city2 string) (int, error) {
	if d, ok := m.distances[cityPair{city1, city2}]; ok {
		return d, nil
	}
	if city1 == city2 {
		return 0, nil
	}
	return 0, fmt.Errorf("distance map: no distance recorded from %q to %q", city1, city2)
}

// Len returns the number of directed pairs recorded.
func (m *Map) Len() int { return len(m.distances) }
