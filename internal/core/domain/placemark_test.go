package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlacemark_Valid(t *testing.T) {
	p, err := NewPlacemark(43.55, -5.92)
	require.NoError(t, err)
	assert.Equal(t, 43.55, p.Lat)
	assert.Equal(t, -5.92, p.Lng)
	assert.Empty(t, p.ID)
	assert.Empty(t, p.Title)
}

func TestNewPlacemark_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "north pole", lat: 90, lng: 0, wantErr: false},
		{name: "south pole", lat: -90, lng: 0, wantErr: false},
		{name: "date line east", lat: 0, lng: 180, wantErr: false},
		{name: "date line west", lat: 0, lng: -180, wantErr: false},
		{name: "latitude too high", lat: 90.001, lng: 0, wantErr: true},
		{name: "latitude too low", lat: -91, lng: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lng: 181, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -180.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlacemark(tt.lat, tt.lng)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlacemark_DisplayTitle(t *testing.T) {
	titled := Placemark{Lat: 1, Lng: 2, Title: "Lighthouse"}
	assert.Equal(t, "Lighthouse", titled.DisplayTitle())

	untitled := Placemark{Lat: 43.55473, Lng: -5.92483}
	assert.Equal(t, "43.55473, -5.92483", untitled.DisplayTitle())
}
