package pod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

func TestMarshalContainer_RoundTrip(t *testing.T) {
	c := domain.NewContainer()
	c.Set(domain.Record{ID: "r1", Type: domain.RecordPlacemark, Attributes: map[string]any{
		"name": "Lighthouse", "latitude": 43.55, "longitude": -5.92,
	}})
	c.Set(domain.Record{ID: "r2", Type: domain.RecordComment, Attributes: map[string]any{
		"author": "me", "text": "nice", "createdAt": "2024-03-01T12:30:00Z",
	}})

	data, err := MarshalContainer(c)
	require.NoError(t, err)

	got, err := UnmarshalContainer(data)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	mark := got.Records["r1"]
	assert.Equal(t, domain.RecordPlacemark, mark.Type)
	assert.Equal(t, "Lighthouse", mark.Attributes["name"])
	assert.Equal(t, 43.55, mark.Attributes["latitude"])
	assert.Equal(t, -5.92, mark.Attributes["longitude"])

	comment := got.Records["r2"]
	assert.Equal(t, domain.RecordComment, comment.Type)
	assert.Equal(t, "nice", comment.Attributes["text"])
}

func TestUnmarshalContainer_Invalid(t *testing.T) {
	_, err := UnmarshalContainer([]byte("not json at all"))
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
}

func TestUnmarshalContainer_Empty(t *testing.T) {
	got, err := UnmarshalContainer([]byte(`{"records":{}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
