// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewBrowsing is the map view in browsing mode.
	ViewBrowsing ViewType = iota
	// ViewPlacing is the map view armed for placing a new placemark.
	ViewPlacing
	// ViewDetailForm is the new-place detail entry form.
	ViewDetailForm
	// ViewPlaceDetail shows the full detail of an existing place.
	ViewPlaceDetail
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewBrowsing:
		return "browsing"
	case ViewPlacing:
		return "placing"
	case ViewDetailForm:
		return "detail_form"
	case ViewPlaceDetail:
		return "place_detail"
	default:
		return "unknown"
	}
}

// Tab identifies a pane within the place detail view. Switching tabs
// never re-fetches the place.
type Tab int

const (
	// TabOverview shows the place description and photos.
	TabOverview Tab = iota
	// TabReviews shows comments and ratings.
	TabReviews
)

// String returns the string representation of the tab.
func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabReviews:
		return "reviews"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// MapLoaded carries the rebuilt map aggregate from the service.
type MapLoaded struct {
	Map *domain.Map
	Err error
}

// MapClicked is sent when the user confirms a coordinate on the map
// while in placing mode.
type MapClicked struct {
	Lat float64
	Lng float64
}

// MarkerSelected is sent when the user selects an existing marker
// while browsing.
type MarkerSelected struct {
	Placemark domain.Placemark
}

// FormSubmitted carries the completed detail form back to the app.
type FormSubmitted struct {
	Placemark   domain.Placemark
	Title       string
	Category    string
	Description string
}

// FormCancelled signals the detail form was abandoned; the staged
// coordinate is discarded.
type FormCancelled struct{}

// PersistSettled carries the outcome of a fire-and-forget write. ID
// names the record the write was for. Failures are logged, never
// surfaced to the user mid-flow.
type PersistSettled struct {
	ID  string
	Err error
}

// PlaceLoaded carries a freshly fetched place. URL identifies which
// navigation requested it so stale arrivals can be dropped.
type PlaceLoaded struct {
	URL   string
	Place *domain.Place
	Err   error
}

// CategoryChanged is sent when the marker category filter changes.
type CategoryChanged struct {
	Category string
}
