package pod

import (
	"strings"

	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// Ensure Resolver implements the driven port.
var _ driven.LocatorResolver = (*Resolver)(nil)

// Fixed paths under the pod root. All placemark records for a user live
// in one container; each place gets its own container under places/.
const (
	placemarksPath = "public/lomap/placemarks"
	placesPath     = "public/lomap/places"
)

// PlacemarksLocator returns the locator of the user's placemark
// container: <podRoot>/public/lomap/placemarks.
func PlacemarksLocator(podRoot string) string {
	return join(podRoot, placemarksPath)
}

// PlaceLocator returns the locator of a single place container:
// <podRoot>/public/lomap/places/<id>.
func PlaceLocator(podRoot, id string) string {
	return join(podRoot, placesPath, id)
}

// Resolver binds the locator scheme to one user's pod root.
type Resolver struct {
	root string
}

// NewResolver creates a resolver for the given pod root.
func NewResolver(podRoot string) *Resolver {
	return &Resolver{root: podRoot}
}

// PlacemarksLocator returns the user's placemark container locator.
func (r *Resolver) PlacemarksLocator() string {
	return PlacemarksLocator(r.root)
}

// PlaceLocator returns the locator of the place container with id.
func (r *Resolver) PlaceLocator(id string) string {
	return PlaceLocator(r.root, id)
}

// join concatenates URL segments with exactly one slash between them.
func join(root string, segments ...string) string {
	out := strings.TrimRight(root, "/")
	for _, s := range segments {
		out += "/" + strings.Trim(s, "/")
	}
	return out
}
