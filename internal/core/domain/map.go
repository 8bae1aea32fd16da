package domain

// Default map centre used when a map has no placemarks yet (Avilés).
const (
	DefaultCenterLat = 43.55473
	DefaultCenterLng = -5.92483
)

// Map is a named aggregate holding an ordered sequence of placemarks.
// Insertion order is chronological and determines default centring.
//
// A Map is client-exclusive for the duration of a session; it is never
// shared across sessions. The user's container remains the source of
// truth for place-level data.
type Map struct {
	// Name identifies the map.
	Name string

	placemarks []Placemark
}

// NewMap creates an empty map with the given name.
func NewMap(name string) *Map {
	return &Map{Name: name}
}

// Add appends a placemark to the map. Placemarks sharing an identity key
// with one already present are not inserted twice; out-of-range
// coordinates fail with ErrInvalidInput.
func (m *Map) Add(p Placemark) error {
	if p.Lat < MinLatitude || p.Lat > MaxLatitude ||
		p.Lng < MinLongitude || p.Lng > MaxLongitude {
		return ErrInvalidInput
	}
	if p.ID != "" {
		for _, existing := range m.placemarks {
			if existing.ID == p.ID {
				return nil
			}
		}
	}
	m.placemarks = append(m.placemarks, p)
	return nil
}

// Placemarks returns the placemarks in insertion order.
// The returned slice must not be mutated by callers.
func (m *Map) Placemarks() []Placemark {
	return m.placemarks
}

// Len returns the number of placemarks on the map.
func (m *Map) Len() int {
	return len(m.placemarks)
}

// Center returns the coordinates the map should centre on: the last
// placemark added, or the default centre when the map is empty.
func (m *Map) Center() (lat, lng float64) {
	if len(m.placemarks) == 0 {
		return DefaultCenterLat, DefaultCenterLng
	}
	last := m.placemarks[len(m.placemarks)-1]
	return last.Lat, last.Lng
}
