package sqlite

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// setupTestCatalog creates a temporary SQLite catalog for testing.
func setupTestCatalog(t *testing.T) (*Catalog, func()) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "lomap-test-*")
	require.NoError(t, err)

	catalog, err := NewCatalog(tempDir)
	require.NoError(t, err)
	require.NotNil(t, catalog)

	cleanup := func() {
		assert.NoError(t, catalog.Close())
		assert.NoError(t, os.RemoveAll(tempDir))
	}

	return catalog, cleanup
}

func TestCatalog_SaveAndList(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	ctx := context.Background()

	place := domain.Place{
		URL:         "https://pod.example/public/lomap/places/abc",
		Title:       "Cabo Peñas",
		Lat:         43.655,
		Lng:         -5.85,
		Description: "Lighthouse and cliffs",
		Comments: []domain.Comment{
			{ID: "c1", Author: "https://pod.example/profile#me", Text: "Windy", CreatedAt: time.Now().UTC().Truncate(time.Second)},
		},
		Ratings: []domain.Rating{
			{ID: "r1", Author: "https://pod.example/profile#me", Score: 4},
		},
	}

	require.NoError(t, catalog.Save(ctx, place))

	places, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)

	got := places[0]
	assert.Equal(t, place.URL, got.URL)
	assert.Equal(t, place.Title, got.Title)
	assert.Equal(t, place.Description, got.Description)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Windy", got.Comments[0].Text)
	require.Len(t, got.Ratings, 1)
	assert.Equal(t, 4, got.Ratings[0].Score)
}

func TestCatalog_SaveUpsertsByURL(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	ctx := context.Background()
	url := "https://pod.example/public/lomap/places/abc"

	require.NoError(t, catalog.Save(ctx, domain.Place{URL: url, Title: "before"}))
	require.NoError(t, catalog.Save(ctx, domain.Place{URL: url, Title: "after"}))

	places, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "after", places[0].Title)
}

func TestCatalog_SaveWithoutURL(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	err := catalog.Save(context.Background(), domain.Place{Title: "nameless"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalog_ListOrdersByURL(t *testing.T) {
	catalog, cleanup := setupTestCatalog(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, catalog.Save(ctx, domain.Place{URL: "https://pod.example/b", Title: "B"}))
	require.NoError(t, catalog.Save(ctx, domain.Place{URL: "https://pod.example/a", Title: "A"}))

	places, err := catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "A", places[0].Title)
	assert.Equal(t, "B", places[1].Title)
}

func TestCatalog_ReopenKeepsData(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "lomap-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	catalog, err := NewCatalog(tempDir)
	require.NoError(t, err)
	require.NoError(t, catalog.Save(context.Background(), domain.Place{URL: "u", Title: "kept"}))
	require.NoError(t, catalog.Close())

	reopened, err := NewCatalog(tempDir)
	require.NoError(t, err)
	defer reopened.Close()

	places, err := reopened.List(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "kept", places[0].Title)
}
