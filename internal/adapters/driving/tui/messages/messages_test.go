package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewBrowsing, "browsing"},
		{ViewPlacing, "placing"},
		{ViewDetailForm, "detail_form"},
		{ViewPlaceDetail, "place_detail"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.view.String())
	}
}

func TestTab_String(t *testing.T) {
	assert.Equal(t, "overview", TabOverview.String())
	assert.Equal(t, "reviews", TabReviews.String())
	assert.Equal(t, "unknown", Tab(99).String())
}
