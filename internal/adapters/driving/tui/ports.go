// Package tui provides an interactive terminal user interface for lomap.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Map manages the placemark map aggregate and its persistence.
	Map driving.MapService

	// Place manages place detail records and their sub-writes.
	Place driving.PlaceService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(mapService driving.MapService, placeService driving.PlaceService) *Ports {
	return &Ports{
		Map:   mapService,
		Place: placeService,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Map == nil {
		return ErrMissingMapService
	}
	if p.Place == nil {
		return ErrMissingPlaceService
	}
	return nil
}
