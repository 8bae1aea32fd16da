package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// fakeStore is an in-memory container store for service tests.
type fakeStore struct {
	mu         sync.Mutex
	containers map[string]*domain.Container
	persistErr error
	loadErr    error
	persists   int
	loads      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{containers: make(map[string]*domain.Container)}
}

func (f *fakeStore) Persist(_ context.Context, locator string, rec domain.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.persists++
	if f.persistErr != nil {
		return f.persistErr
	}
	c, ok := f.containers[locator]
	if !ok {
		c = domain.NewContainer()
		f.containers[locator] = c
	}
	c.Set(rec)
	return nil
}

func (f *fakeStore) Load(_ context.Context, locator string) (*domain.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	c, ok := f.containers[locator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, locator)
	}
	// Shallow copy so callers cannot mutate the stored container.
	out := domain.NewContainer()
	for _, rec := range c.Records {
		out.Set(rec)
	}
	return out, nil
}

// fakeResolver mints locators under a fixed root.
type fakeResolver struct{}

func (fakeResolver) PlacemarksLocator() string    { return "https://pod.example/public/lomap/placemarks" }
func (fakeResolver) PlaceLocator(id string) string {
	return "https://pod.example/public/lomap/places/" + id
}

// fakeSession is a always-valid session stub.
type fakeSession struct{}

func (fakeSession) Client() *http.Client { return http.DefaultClient }
func (fakeSession) WebID() string        { return "https://pod.example/profile#me" }
func (fakeSession) PodRoot() string      { return "https://pod.example" }
func (fakeSession) Valid() bool          { return true }

// awaitDone waits for a completion channel with a test timeout.
func awaitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("persistence task did not settle")
		return nil
	}
}

func TestMapService_StagePlacemark(t *testing.T) {
	svc := NewMapService(newFakeStore(), fakeResolver{})

	p, err := svc.StagePlacemark(43.55, -5.92)
	require.NoError(t, err)
	assert.Equal(t, 43.55, p.Lat)
	assert.Empty(t, p.ID)

	_, err = svc.StagePlacemark(91, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMapService_CommitPlacemark_AppendsAndPersists(t *testing.T) {
	store := newFakeStore()
	svc := NewMapService(store, fakeResolver{})
	m := domain.NewMap("mymap")

	p := domain.Placemark{Lat: 43.55, Lng: -5.92, Title: "Lighthouse"}
	done, err := svc.CommitPlacemark(context.Background(), m, p)
	require.NoError(t, err)

	// The append is immediate; the commit does not wait for the write.
	require.Equal(t, 1, m.Len())
	last := m.Placemarks()[0]
	assert.Equal(t, "Lighthouse", last.Title)
	assert.NotEmpty(t, last.ID)

	require.NoError(t, awaitDone(t, done))

	c := store.containers["https://pod.example/public/lomap/placemarks"]
	require.NotNil(t, c)
	assert.Equal(t, 1, c.Len())
}

func TestMapService_CommitPlacemark_EncodeFailureIsSynchronous(t *testing.T) {
	store := newFakeStore()
	svc := NewMapService(store, fakeResolver{})
	m := domain.NewMap("mymap")

	_, err := svc.CommitPlacemark(context.Background(), m, domain.Placemark{Lat: 200, Lng: 0})
	assert.ErrorIs(t, err, domain.ErrEncode)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, store.persists)
}

func TestMapService_CommitPlacemark_WriteFailureSettlesOnChannel(t *testing.T) {
	store := newFakeStore()
	store.persistErr = fmt.Errorf("%w: boom", domain.ErrNetwork)
	svc := NewMapService(store, fakeResolver{})
	m := domain.NewMap("mymap")

	done, err := svc.CommitPlacemark(context.Background(), m, domain.Placemark{Lat: 1, Lng: 2})
	require.NoError(t, err)

	// Optimistic: the map keeps the placemark even though the write
	// fails; the outcome is observable on the channel.
	assert.Equal(t, 1, m.Len())
	assert.ErrorIs(t, awaitDone(t, done), domain.ErrNetwork)
}

func TestMapService_LoadMap_AbsentContainerIsEmptyMap(t *testing.T) {
	svc := NewMapService(newFakeStore(), fakeResolver{})

	m, err := svc.LoadMap(context.Background(), "mymap")
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "mymap", m.Name)
}

func TestMapService_LoadMap_RebuildsPlacemarks(t *testing.T) {
	store := newFakeStore()
	svc := NewMapService(store, fakeResolver{})
	ctx := context.Background()
	m := domain.NewMap("mymap")

	for _, title := range []string{"one", "two", "three"} {
		done, err := svc.CommitPlacemark(ctx, m, domain.Placemark{Lat: 1, Lng: 2, Title: title})
		require.NoError(t, err)
		require.NoError(t, awaitDone(t, done))
	}

	loaded, err := svc.LoadMap(ctx, "mymap")
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())
}

func TestMapService_LoadMap_OtherErrorsSurface(t *testing.T) {
	store := newFakeStore()
	store.loadErr = fmt.Errorf("%w: refused", domain.ErrNetwork)
	svc := NewMapService(store, fakeResolver{})

	_, err := svc.LoadMap(context.Background(), "mymap")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
