package domain

import "fmt"

// Coordinate bounds for a valid placemark.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Placemark is a lightweight map-coordinate entity. It may carry a
// back-reference to a richer Place record through PlaceURL.
//
// Placemarks are append-only within a session: they are created from map
// clicks and never removed.
type Placemark struct {
	// ID is the record identifier inside the user's container.
	// Empty until the placemark has been staged for persistence.
	ID string

	// Lat is the latitude in degrees, within [-90, 90].
	Lat float64

	// Lng is the longitude in degrees, within [-180, 180].
	Lng float64

	// Title is the optional display name.
	Title string

	// Category classifies the placemark for filtering. Optional.
	Category string

	// PlaceURL is the locator of the full Place record, if one exists.
	PlaceURL string
}

// NewPlacemark creates a placemark at the given coordinates.
// It fails with ErrInvalidInput when either coordinate is out of range.
func NewPlacemark(lat, lng float64) (Placemark, error) {
	if lat < MinLatitude || lat > MaxLatitude {
		return Placemark{}, fmt.Errorf("%w: latitude %v out of range", ErrInvalidInput, lat)
	}
	if lng < MinLongitude || lng > MaxLongitude {
		return Placemark{}, fmt.Errorf("%w: longitude %v out of range", ErrInvalidInput, lng)
	}
	return Placemark{Lat: lat, Lng: lng}, nil
}

// DisplayTitle returns the title, falling back to the coordinates when
// the placemark is untitled.
func (p Placemark) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return fmt.Sprintf("%.5f, %.5f", p.Lat, p.Lng)
}
