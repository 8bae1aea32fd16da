// Package placedetail provides the full detail view for a place,
// with overview and reviews panes.
package placedetail

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/messages"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/styles"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
	"github.com/lomap-labs/lomap-cli/internal/core/ports/driving"
)

// View is the place detail view. Each navigation into it re-fetches
// the place; switching panes does not.
type View struct {
	styles *styles.Styles

	placeService driving.PlaceService
	ctx          context.Context

	// url is the locator of the place being shown. Arriving loads for
	// any other locator are stale and dropped.
	url string

	place   *domain.Place
	loading bool
	err     error

	tab messages.Tab

	commentInput textinput.Model
	commenting   bool

	// status is the submission acknowledgement line ("Done!").
	status string

	width  int
	height int
}

// NewView creates a new place detail view.
func NewView(s *styles.Styles, placeService driving.PlaceService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	input := textinput.New()
	input.Placeholder = "Write a comment"
	input.CharLimit = 500
	input.Width = 50

	return &View{
		styles:       s,
		placeService: placeService,
		ctx:          context.Background(),
		commentInput: input,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetPlace points the view at a place and starts a fresh fetch.
func (v *View) SetPlace(url string) tea.Cmd {
	v.url = url
	v.place = nil
	v.loading = true
	v.err = nil
	v.tab = messages.TabOverview
	v.commenting = false
	v.commentInput.SetValue("")
	v.commentInput.Blur()
	v.status = ""

	return v.fetch(url)
}

// fetch loads the place and reports back as a PlaceLoaded message.
func (v *View) fetch(url string) tea.Cmd {
	return func() tea.Msg {
		place, err := v.placeService.Get(v.ctx, url)
		return messages.PlaceLoaded{URL: url, Place: place, Err: err}
	}
}

// Retry re-fetches the current place after a load failure.
func (v *View) Retry() tea.Cmd {
	if v.url == "" {
		return nil
	}
	v.loading = true
	v.err = nil
	return v.fetch(v.url)
}

// Update handles messages for the detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case messages.PlaceLoaded:
		// A navigation away and back re-points the view; loads for the
		// old locator must not clobber the new one.
		if msg.URL != v.url {
			return v, nil
		}
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.place = msg.Place
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.commenting {
		return v.handleCommentKey(msg)
	}

	if v.loading {
		return v, nil
	}

	if v.err != nil {
		if msg.String() == "r" {
			return v, v.Retry()
		}
		return v, nil
	}

	switch msg.String() {
	case "tab":
		// Pane switch reuses the already loaded place.
		if v.tab == messages.TabOverview {
			v.tab = messages.TabReviews
		} else {
			v.tab = messages.TabOverview
		}
		return v, nil

	case "c":
		if v.tab == messages.TabReviews {
			v.commenting = true
			v.status = ""
			v.commentInput.Focus()
			return v, textinput.Blink
		}

	case "0", "1", "2", "3", "4", "5":
		if v.tab == messages.TabReviews {
			score := int(msg.String()[0] - '0')
			return v.submitRating(score)
		}
	}

	return v, nil
}

// handleCommentKey processes input while the comment field is focused.
func (v *View) handleCommentKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		v.commenting = false
		v.commentInput.Blur()
		return v, nil

	case tea.KeyEnter:
		return v.submitComment()
	}

	var cmd tea.Cmd
	v.commentInput, cmd = v.commentInput.Update(msg)
	return v, cmd
}

// submitComment hands the comment to the service. Validation failures
// surface immediately; the write itself is acknowledged optimistically.
func (v *View) submitComment() (*View, tea.Cmd) {
	text := v.commentInput.Value()

	done, err := v.placeService.AddComment(v.ctx, v.url, text)
	if err != nil {
		if strings.TrimSpace(text) == "" {
			v.status = "comment cannot be empty"
		} else {
			v.status = err.Error()
		}
		return v, nil
	}

	v.commenting = false
	v.commentInput.SetValue("")
	v.commentInput.Blur()
	v.status = "Done!"

	// Optimistic local echo so the new comment shows without a
	// re-fetch. The container write settles in the background.
	if v.place != nil {
		v.place.Comments = append(v.place.Comments, domain.Comment{Text: text})
	}

	return v, awaitSettle("", done)
}

// submitRating hands a rating to the service with the same optimistic
// acknowledgement as comments.
func (v *View) submitRating(score int) (*View, tea.Cmd) {
	done, err := v.placeService.AddRating(v.ctx, v.url, score)
	if err != nil {
		v.status = err.Error()
		return v, nil
	}

	v.status = "Done!"
	if v.place != nil {
		v.place.Ratings = append(v.place.Ratings, domain.Rating{Score: score})
	}

	return v, awaitSettle("", done)
}

// awaitSettle turns a completion channel into a PersistSettled message.
func awaitSettle(id string, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return messages.PersistSettled{ID: id, Err: <-done}
	}
}

// View renders the detail view.
func (v *View) View() string {
	if v.loading {
		return v.styles.Muted.Render("Loading place...")
	}

	if v.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			v.styles.Error.Render("Could not load place: "+v.err.Error()),
			"",
			v.styles.Help.Render("r retry  esc back"),
		)
	}

	if v.place == nil {
		return v.styles.Muted.Render("No place selected")
	}

	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render(v.place.Title), "")
	sections = append(sections, v.renderTabs(), "")

	if v.tab == messages.TabOverview {
		sections = append(sections, v.renderOverview())
	} else {
		sections = append(sections, v.renderReviews())
	}

	if v.status != "" {
		style := v.styles.Success
		if v.status != "Done!" {
			style = v.styles.Error
		}
		sections = append(sections, "", style.Render(v.status))
	}

	sections = append(sections, "",
		v.styles.Help.Render("tab switch pane  c comment  0-5 rate  esc back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabs draws the pane selector.
func (v *View) renderTabs() string {
	overview := v.styles.InactiveTab.Render("Overview")
	reviews := v.styles.InactiveTab.Render("Reviews")
	if v.tab == messages.TabOverview {
		overview = v.styles.ActiveTab.Render("Overview")
	} else {
		reviews = v.styles.ActiveTab.Render("Reviews")
	}
	return overview + "  " + reviews
}

// renderOverview draws the description and photo list.
func (v *View) renderOverview() string {
	lines := make([]string, 0, 8)

	lines = append(lines, v.styles.Muted.Render(
		fmt.Sprintf("%.5f, %.5f", v.place.Lat, v.place.Lng)))

	if v.place.Description != "" {
		lines = append(lines, "", v.styles.Normal.Render(v.place.Description))
	}

	if len(v.place.Photos) > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render("Photos"))
		for _, photo := range v.place.Photos {
			lines = append(lines, v.styles.Normal.Render("  "+photo.Name))
		}
	}

	return strings.Join(lines, "\n")
}

// renderReviews draws ratings, comments and the comment input.
func (v *View) renderReviews() string {
	lines := make([]string, 0, 16)

	avg := v.place.AverageRating()
	lines = append(lines, v.styles.Subtitle.Render(
		fmt.Sprintf("Rating: %.1f (%d)", avg, len(v.place.Ratings))))

	lines = append(lines, "", v.styles.Subtitle.Render("Comments"))
	if len(v.place.Comments) == 0 {
		lines = append(lines, v.styles.Muted.Render("  No comments yet"))
	}
	for _, comment := range v.place.Comments {
		lines = append(lines, v.styles.Normal.Render("  "+comment.Text))
		if comment.Author != "" {
			lines = append(lines, v.styles.Muted.Render("    by "+comment.Author))
		}
	}

	if v.commenting {
		lines = append(lines, "", v.styles.InputField.Render(v.commentInput.View()))
	}

	return strings.Join(lines, "\n")
}

// URL returns the locator of the place being shown.
func (v *View) URL() string {
	return v.url
}

// Place returns the loaded place, or nil while loading or failed.
func (v *View) Place() *domain.Place {
	return v.place
}

// Loading returns whether a fetch is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}

// Tab returns the active pane.
func (v *View) Tab() messages.Tab {
	return v.tab
}

// Commenting returns whether the comment input is focused.
func (v *View) Commenting() bool {
	return v.commenting
}

// Status returns the submission acknowledgement line.
func (v *View) Status() string {
	return v.status
}
