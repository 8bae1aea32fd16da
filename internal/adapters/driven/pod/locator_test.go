package pod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacemarksLocator(t *testing.T) {
	assert.Equal(t,
		"https://pod.example/public/lomap/placemarks",
		PlacemarksLocator("https://pod.example"))

	// Trailing slash on the root does not double up.
	assert.Equal(t,
		"https://pod.example/public/lomap/placemarks",
		PlacemarksLocator("https://pod.example/"))
}

func TestPlaceLocator(t *testing.T) {
	assert.Equal(t,
		"https://pod.example/public/lomap/places/abc-123",
		PlaceLocator("https://pod.example/", "abc-123"))
}
