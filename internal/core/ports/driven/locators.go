package driven

// LocatorResolver builds the deterministic locators under the user's
// storage root. The scheme belongs to the container store; core
// services only carry the resulting strings.
type LocatorResolver interface {
	// PlacemarksLocator returns the locator of the single container
	// holding all of the user's placemark records.
	PlacemarksLocator() string

	// PlaceLocator returns the locator of the place container with the
	// given identifier.
	PlaceLocator(id string) string
}
