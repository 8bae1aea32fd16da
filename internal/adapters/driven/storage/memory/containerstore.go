package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
)

// Ensure ContainerStore implements the interface.
var _ driven.ContainerStore = (*ContainerStore)(nil)

// ContainerStore is an in-memory implementation of
// driven.ContainerStore. It reproduces the pod store's observable
// contract: an absent locator behaves as NotFound on Load and selects
// the create path on Persist.
type ContainerStore struct {
	mu         sync.Mutex
	containers map[string]*domain.Container
}

// NewContainerStore creates a new in-memory container store.
func NewContainerStore() *ContainerStore {
	return &ContainerStore{containers: make(map[string]*domain.Container)}
}

// Persist adds the record to the container at locator, creating the
// container when absent.
func (s *ContainerStore) Persist(_ context.Context, locator string, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[locator]
	if !ok {
		c = domain.NewContainer()
		s.containers[locator] = c
	}
	c.Set(rec)
	return nil
}

// Load returns a copy of the container at locator, or ErrNotFound.
func (s *ContainerStore) Load(_ context.Context, locator string) (*domain.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.containers[locator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, locator)
	}
	out := domain.NewContainer()
	for _, rec := range c.Records {
		out.Set(rec)
	}
	return out, nil
}
