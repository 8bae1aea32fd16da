package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

func TestCatalogService_List(t *testing.T) {
	catalog := &fakeCatalog{saved: []domain.Place{
		{URL: "https://pod.example/places/a", Title: "Faro"},
		{URL: "https://pod.example/places/b", Title: "Puerto"},
	}}
	svc := NewCatalogService(catalog)

	places, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Faro", places[0].Title)
}

func TestCatalogService_ListEmpty(t *testing.T) {
	svc := NewCatalogService(&fakeCatalog{})

	places, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, places)
}
