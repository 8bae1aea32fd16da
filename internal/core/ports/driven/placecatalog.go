package driven

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// PlaceCatalog persists the shared catalog of places served by the HTTP
// surface. Backed by SQLite; an in-memory implementation exists for
// tests.
type PlaceCatalog interface {
	// Save stores or updates a catalog entry keyed by its URL.
	Save(ctx context.Context, place domain.Place) error

	// List returns all catalog entries.
	List(ctx context.Context) ([]domain.Place, error)
}
