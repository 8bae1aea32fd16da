package services

import (
	"context"
	"errors"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// Ensure MapService implements the interface.
var _ driving.MapService = (*MapService)(nil)

// MapService manages the user's map aggregate and its persistence into
// the placemark container.
type MapService struct {
	store    driven.ContainerStore
	locators driven.LocatorResolver
}

// NewMapService creates a new map service.
func NewMapService(store driven.ContainerStore, locators driven.LocatorResolver) *MapService {
	return &MapService{
		store:    store,
		locators: locators,
	}
}

// StagePlacemark validates clicked coordinates into a transient
// placemark. Nothing is persisted and no map is touched.
func (s *MapService) StagePlacemark(lat, lng float64) (domain.Placemark, error) {
	return domain.NewPlacemark(lat, lng)
}

// CommitPlacemark appends the placemark to the map and spawns its
// persistence. Encoding failures surface synchronously, before any
// network activity; the write itself settles on the returned channel
// and is never retried. A failed write is logged, not re-surfaced: the
// caller has already acknowledged optimistically.
func (s *MapService) CommitPlacemark(ctx context.Context, m *domain.Map, p domain.Placemark) (<-chan error, error) {
	rec, err := domain.EncodePlacemark(p)
	if err != nil {
		return nil, err
	}
	p.ID = rec.ID
	if err := m.Add(p); err != nil {
		return nil, err
	}

	locator := s.locators.PlacemarksLocator()
	done := make(chan error, 1)
	go func() {
		defer close(done)
		err := s.store.Persist(ctx, locator, rec)
		if err != nil {
			logger.Error("map: persisting placemark %s to %s: %v", rec.ID, locator, err)
		}
		done <- err
	}()
	return done, nil
}

// LoadMap fetches the placemark container and rebuilds the map
// aggregate. An absent container is the first-write state, so it yields
// an empty map rather than an error.
func (s *MapService) LoadMap(ctx context.Context, name string) (*domain.Map, error) {
	m := domain.NewMap(name)

	container, err := s.store.Load(ctx, s.locators.PlacemarksLocator())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return m, nil
		}
		return nil, err
	}

	for _, rec := range container.ByType(domain.RecordPlacemark) {
		mark, err := domain.DecodePlacemark(rec)
		if err != nil {
			return nil, err
		}
		if err := m.Add(mark); err != nil {
			return nil, err
		}
	}
	logger.Debug("map: loaded %d placemarks", m.Len())
	return m, nil
}
