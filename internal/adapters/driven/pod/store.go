package pod

import (
	"context"
	"sync"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driven"
	"github.com/lomap-labs/lomap-cli/internal/logger"
)

// ContainerClient abstracts the whole-resource GET/PUT transport so the
// store can be exercised against fakes.
type ContainerClient interface {
	FetchContainer(ctx context.Context, locator string) (*domain.Container, error)
	SaveContainer(ctx context.Context, locator string, container *domain.Container) error
}

// Ensure Store implements the driven port.
var _ driven.ContainerStore = (*Store)(nil)

// Store is the create-or-append persistence engine. Each Persist is a
// read-modify-write pair; writes targeting the same locator are
// serialised within this process so the pair cannot interleave with
// itself.
type Store struct {
	client ContainerClient

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a container store over the given client.
func NewStore(client ContainerClient) *Store {
	return &Store{
		client: client,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Persist adds the record to the container at locator. An absent
// container selects the create path; every other failure is returned
// unmodified and never retried.
func (s *Store) Persist(ctx context.Context, locator string, rec domain.Record) error {
	lock := s.locatorLock(locator)
	lock.Lock()
	defer lock.Unlock()

	container, err := s.client.FetchContainer(ctx, locator)
	switch {
	case err == nil:
		// Append path: the container exists.
	case IsNotFound(err):
		// Create path: first write to this locator.
		logger.Debug("pod: container %s absent, creating", locator)
		container = domain.NewContainer()
	default:
		return err
	}

	container.Set(rec)
	return s.client.SaveContainer(ctx, locator, container)
}

// Load fetches and decodes the container at locator.
func (s *Store) Load(ctx context.Context, locator string) (*domain.Container, error) {
	return s.client.FetchContainer(ctx, locator)
}

// locatorLock returns the mutex serialising writes to one locator.
func (s *Store) locatorLock(locator string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[locator]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[locator] = lock
	}
	return lock
}
