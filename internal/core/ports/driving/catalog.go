package driving

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// CatalogService exposes the shared catalog of places consumed by the
// HTTP surface.
type CatalogService interface {
	// List returns all places in the catalog.
	List(ctx context.Context) ([]domain.Place, error)
}
