package tui

import "errors"

// ErrMissingMapService is returned when the map service is not provided.
var ErrMissingMapService = errors.New("tui: map service is required")

// ErrMissingPlaceService is returned when the place service is not provided.
var ErrMissingPlaceService = errors.New("tui: place service is required")
