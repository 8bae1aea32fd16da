package services

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService exposes the shared catalog of places behind the HTTP
// surface.
type CatalogService struct {
	catalog driven.PlaceCatalog
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalog driven.PlaceCatalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// List returns all places in the catalog.
func (s *CatalogService) List(ctx context.Context) ([]domain.Place, error) {
	return s.catalog.List(ctx)
}
