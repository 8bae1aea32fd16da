// Package memory provides in-memory implementations of the driven
// storage ports, used in tests and offline runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// Ensure PlaceCatalog implements the interface.
var _ driven.PlaceCatalog = (*PlaceCatalog)(nil)

// PlaceCatalog is an in-memory implementation of driven.PlaceCatalog.
type PlaceCatalog struct {
	mu     sync.RWMutex
	places map[string]domain.Place
}

// NewPlaceCatalog creates a new in-memory place catalog.
func NewPlaceCatalog() *PlaceCatalog {
	return &PlaceCatalog{places: make(map[string]domain.Place)}
}

// Save stores or updates a catalog entry keyed by its URL.
func (c *PlaceCatalog) Save(_ context.Context, place domain.Place) error {
	if place.URL == "" {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.places[place.URL] = place
	return nil
}

// List returns all catalog entries ordered by URL.
func (c *PlaceCatalog) List(_ context.Context) ([]domain.Place, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Place, 0, len(c.places))
	for _, place := range c.places {
		out = append(out, place)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URL < out[j].URL })
	return out, nil
}
