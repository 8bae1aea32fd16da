package driving

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// PlaceService manages place detail records and their append-only
// sub-writes.
type PlaceService interface {
	// Get fetches the full place record at placeURL. Places are never
	// cached: every navigation to a detail view re-fetches.
	Get(ctx context.Context, placeURL string) (*domain.Place, error)

	// Create persists a brand-new place container. The locator is
	// minted deterministically and returned immediately; the container
	// write settles on the channel so callers can link a placemark to
	// the place without waiting for the network.
	Create(ctx context.Context, place domain.Place) (string, <-chan error, error)

	// AddComment appends one comment to the place container. Validation
	// failures return synchronously; the persistence outcome settles on
	// the returned channel.
	AddComment(ctx context.Context, placeURL, text string) (<-chan error, error)

	// AddRating appends one rating to the place container.
	AddRating(ctx context.Context, placeURL string, score int) (<-chan error, error)

	// AddPhotos appends photo references to the place container, one
	// record per photo. Photos sharing a name within the same submission
	// are staged once.
	AddPhotos(ctx context.Context, placeURL string, photos []domain.Photo) (<-chan error, error)
}
