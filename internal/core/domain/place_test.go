package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_AverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []Rating
		want    float64
	}{
		{name: "no ratings", ratings: nil, want: 0},
		{name: "single", ratings: []Rating{{Score: 4}}, want: 4},
		{name: "mixed", ratings: []Rating{{Score: 2}, {Score: 5}, {Score: 5}}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Place{Ratings: tt.ratings}
			assert.InDelta(t, tt.want, p.AverageRating(), 0.0001)
		})
	}
}
