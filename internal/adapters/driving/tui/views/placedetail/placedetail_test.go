package placedetail

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/messages"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// fakePlaceService counts fetches so tests can assert the view never
// re-fetches on pane switches.
type fakePlaceService struct {
	gets   int
	place  *domain.Place
	getErr error
}

func settled() <-chan error {
	done := make(chan error, 1)
	done <- nil
	return done
}

func (f *fakePlaceService) Get(_ context.Context, url string) (*domain.Place, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.place != nil {
		return f.place, nil
	}
	return &domain.Place{URL: url, Title: "A place"}, nil
}

func (f *fakePlaceService) Create(context.Context, domain.Place) (string, <-chan error, error) {
	return "", settled(), nil
}

func (f *fakePlaceService) AddComment(_ context.Context, _, text string) (<-chan error, error) {
	if text == "" || text == "   " {
		return nil, domain.ErrInvalidInput
	}
	return settled(), nil
}

func (f *fakePlaceService) AddRating(_ context.Context, _ string, score int) (<-chan error, error) {
	if score < domain.MinScore || score > domain.MaxScore {
		return nil, domain.ErrInvalidInput
	}
	return settled(), nil
}

func (f *fakePlaceService) AddPhotos(context.Context, string, []domain.Photo) (<-chan error, error) {
	return settled(), nil
}

func loadView(t *testing.T, svc *fakePlaceService, url string) *View {
	t.Helper()
	v := NewView(nil, svc)
	cmd := v.SetPlace(url)
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	require.False(t, v.Loading())
	return v
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestView_SetPlaceFetchesFresh(t *testing.T) {
	svc := &fakePlaceService{}
	v := NewView(nil, svc)

	cmd := v.SetPlace("https://pod.example/p/1")
	assert.True(t, v.Loading())

	msg := cmd()
	loaded, ok := msg.(messages.PlaceLoaded)
	require.True(t, ok)
	assert.Equal(t, "https://pod.example/p/1", loaded.URL)

	v, _ = v.Update(msg)
	assert.False(t, v.Loading())
	require.NotNil(t, v.Place())
	assert.Equal(t, "A place", v.Place().Title)
	assert.Equal(t, 1, svc.gets)
}

func TestView_EveryNavigationRefetches(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")

	cmd := v.SetPlace("https://pod.example/p/1")
	v, _ = v.Update(cmd())

	assert.Equal(t, 2, svc.gets)
	_ = v
}

func TestView_StaleLoadDropped(t *testing.T) {
	svc := &fakePlaceService{}
	v := NewView(nil, svc)
	_ = v.SetPlace("https://pod.example/p/new")

	// A load for a previously shown place arrives late.
	v, _ = v.Update(messages.PlaceLoaded{
		URL:   "https://pod.example/p/old",
		Place: &domain.Place{Title: "Old"},
	})

	assert.True(t, v.Loading())
	assert.Nil(t, v.Place())
}

func TestView_TabSwitchDoesNotRefetch(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")
	require.Equal(t, messages.TabOverview, v.Tab())

	v, cmd := v.Update(keyMsg("tab"))
	assert.Nil(t, cmd)
	assert.Equal(t, messages.TabReviews, v.Tab())

	v, _ = v.Update(keyMsg("tab"))
	assert.Equal(t, messages.TabOverview, v.Tab())

	assert.Equal(t, 1, svc.gets)
}

func TestView_LoadErrorOffersRetry(t *testing.T) {
	svc := &fakePlaceService{getErr: errors.New("boom")}
	v := NewView(nil, svc)
	cmd := v.SetPlace("https://pod.example/p/1")
	v, _ = v.Update(cmd())

	require.Error(t, v.Err())
	assert.Contains(t, v.View(), "Could not load place")

	// Retry re-fetches.
	svc.getErr = nil
	v, cmd = v.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	assert.NoError(t, v.Err())
	assert.NotNil(t, v.Place())
}

func TestView_CommentSubmitAcksImmediately(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")

	v, _ = v.Update(keyMsg("tab")) // reviews pane
	v, _ = v.Update(keyMsg("c"))
	require.True(t, v.Commenting())

	for _, r := range "Great views" {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	v, cmd := v.Update(keyMsg("enter"))

	// Ack is optimistic: shown before the write settles.
	assert.Equal(t, "Done!", v.Status())
	assert.False(t, v.Commenting())
	require.NotNil(t, cmd)

	// Local echo without a re-fetch.
	require.Len(t, v.Place().Comments, 1)
	assert.Equal(t, "Great views", v.Place().Comments[0].Text)
	assert.Equal(t, 1, svc.gets)
}

func TestView_EmptyCommentRejectedSynchronously(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")

	v, _ = v.Update(keyMsg("tab"))
	v, _ = v.Update(keyMsg("c"))
	v, cmd := v.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, "comment cannot be empty", v.Status())
	assert.True(t, v.Commenting())
	assert.Empty(t, v.Place().Comments)
}

func TestView_RatingSubmitAcks(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")

	v, _ = v.Update(keyMsg("tab"))
	v, cmd := v.Update(keyMsg("4"))

	assert.Equal(t, "Done!", v.Status())
	require.NotNil(t, cmd)
	require.Len(t, v.Place().Ratings, 1)
	assert.Equal(t, 4, v.Place().Ratings[0].Score)
}

func TestView_RatingIgnoredOnOverviewPane(t *testing.T) {
	svc := &fakePlaceService{}
	v := loadView(t, svc, "https://pod.example/p/1")
	require.Equal(t, messages.TabOverview, v.Tab())

	v, cmd := v.Update(keyMsg("4"))

	assert.Nil(t, cmd)
	assert.Empty(t, v.Place().Ratings)
}
