package driving

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// MapService manages the user's map aggregate and its persistence into
// the user-owned container.
type MapService interface {
	// StagePlacemark validates a clicked coordinate pair into a
	// transient placemark. The placemark is not yet on any map.
	StagePlacemark(lat, lng float64) (domain.Placemark, error)

	// CommitPlacemark appends the placemark to the map aggregate and
	// spawns its persistence as an independent task. The append and the
	// returned channel are immediate; the channel settles exactly once
	// with the persistence outcome, so callers may observe completion
	// without blocking the transition that triggered the commit.
	CommitPlacemark(ctx context.Context, m *domain.Map, p domain.Placemark) (<-chan error, error)

	// LoadMap fetches the user's placemark container and rebuilds the
	// map aggregate. An absent container yields an empty map, not an
	// error.
	LoadMap(ctx context.Context, name string) (*domain.Map, error)
}
