package driven

import (
	"context"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// ContainerStore is the create-or-append persistence engine over the
// user-owned remote dataset. The target store exposes whole-resource
// GET/PUT semantics only, so every write is a read-modify-write pair.
type ContainerStore interface {
	// Persist adds the record to the container at locator, creating the
	// container when it does not exist yet. A NotFound probe result is
	// absorbed internally (it selects the create path); every other
	// fetch or write failure is returned unmodified. No retries.
	Persist(ctx context.Context, locator string, rec domain.Record) error

	// Load fetches and decodes the container at locator. Returns
	// domain.ErrNotFound when the container has never been created.
	Load(ctx context.Context, locator string) (*domain.Container, error)
}
