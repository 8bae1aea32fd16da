package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/keymap"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/messages"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/styles"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/views/mapview"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/views/placedetail"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/views/placeform"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// defaultMapName names the single map a session operates on.
const defaultMapName = "places"

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Navigation keeps a single back slot: going back restores the view
// the current one was entered from, one level deep.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// mapView is the browsing/placing map view.
	mapView *mapview.View

	// formView is the new-place detail entry form.
	formView *placeform.View

	// detailView is the place detail view.
	detailView *placedetail.View

	// mapAgg is the session's map aggregate.
	mapAgg *domain.Map

	// currentView tracks which view is active.
	currentView messages.ViewType

	// prevView is the single back-navigation slot.
	prevView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	detailView := placedetail.NewView(s, ports.Place)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		mapView:     mapview.NewView(s, km),
		formView:    placeform.NewView(s),
		detailView:  detailView,
		mapAgg:      domain.NewMap(defaultMapName),
		currentView: messages.ViewBrowsing,
		prevView:    messages.ViewBrowsing,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.detailView.WithContext(ctx)
	return a
}

// WithCategories sets the category cycle for the marker filter.
func (a *App) WithCategories(categories []string) *App {
	a.mapView.SetCategories(categories)
	return a
}

// WithCenter sets the initial viewport centre, used until the loaded
// map supplies one. Zero values leave the built-in default in place.
func (a *App) WithCenter(lat, lng float64) *App {
	if lat != 0 || lng != 0 {
		a.mapView.SetCenter(lat, lng)
	}
	return a
}

// navigate switches views, remembering where we came from.
func (a *App) navigate(to messages.ViewType) {
	a.prevView = a.currentView
	a.currentView = to
}

// back restores the remembered view. The slot is one deep: a second
// back returns to where the first one left.
func (a *App) back() {
	a.currentView, a.prevView = a.prevView, a.currentView
}

// Init implements tea.Model.
// It loads the map and runs initial commands.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("lomap"),
		a.loadMap(),
	)
}

// loadMap fetches the placemark container and rebuilds the aggregate.
func (a *App) loadMap() tea.Cmd {
	return func() tea.Msg {
		m, err := a.ports.Map.LoadMap(a.ctx, defaultMapName)
		return messages.MapLoaded{Map: m, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.mapView, _ = a.mapView.Update(msg)
		a.formView, _ = a.formView.Update(msg)
		a.detailView, _ = a.detailView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.MapLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.mapAgg = msg.Map
		a.mapView, cmd = a.mapView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.navigate(msg.View)
		return a, nil

	case messages.MapClicked:
		return a.handleMapClicked(msg)

	case messages.FormSubmitted:
		return a.handleFormSubmitted(msg)

	case messages.FormCancelled:
		// Discard the staged coordinate and return to the map.
		a.mapView.ResetClick()
		a.back()
		return a, nil

	case messages.MarkerSelected:
		if msg.Placemark.PlaceURL == "" {
			return a, nil
		}
		a.navigate(messages.ViewPlaceDetail)
		return a, a.detailView.SetPlace(msg.Placemark.PlaceURL)

	case messages.PlaceLoaded:
		// Stale loads arriving after navigating away are dropped.
		if a.currentView != messages.ViewPlaceDetail {
			return a, nil
		}
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd

	case messages.PersistSettled:
		// Fire-and-forget outcome: clear the transient marker, never
		// interrupt the user. Failures were already logged.
		a.mapView, cmd = a.mapView.Update(msg)
		return a, cmd

	case messages.CategoryChanged:
		return a, nil
	}

	// Forward other messages to the active view
	switch a.currentView {
	case messages.ViewBrowsing, messages.ViewPlacing:
		a.mapView, cmd = a.mapView.Update(msg)
	case messages.ViewDetailForm:
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewPlaceDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	}

	return a, cmd
}

// handleKeyMsg routes keyboard input to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	keyStr := msg.String()

	// ctrl+c interrupts from any view, even mid-text-entry.
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewBrowsing, messages.ViewPlacing:
		if keymap.Matches(keyStr, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(keyStr, a.keymap.Back) && a.currentView == messages.ViewPlacing {
			// Disarm placing without touching the back slot.
			a.mapView.SetPlacing(false)
			a.currentView = messages.ViewBrowsing
			return a, nil
		}
		a.mapView, cmd = a.mapView.Update(msg)
		return a, cmd

	case messages.ViewDetailForm:
		a.formView, cmd = a.formView.Update(msg)
		return a, cmd

	case messages.ViewPlaceDetail:
		if keymap.Matches(keyStr, a.keymap.Back) && !a.detailView.Commenting() {
			a.back()
			return a, nil
		}
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleMapClicked stages a placemark and opens the detail form.
func (a *App) handleMapClicked(msg messages.MapClicked) (tea.Model, tea.Cmd) {
	staged, err := a.ports.Map.StagePlacemark(msg.Lat, msg.Lng)
	if err != nil {
		a.err = err
		a.mapView.ResetClick()
		return a, nil
	}

	a.formView.SetStaged(staged)
	a.navigate(messages.ViewDetailForm)
	return a, a.formView.Init()
}

// handleFormSubmitted creates the place, commits the placemark and
// returns to browsing without waiting for either write.
func (a *App) handleFormSubmitted(msg messages.FormSubmitted) (tea.Model, tea.Cmd) {
	place := domain.Place{
		Title:       msg.Title,
		Lat:         msg.Placemark.Lat,
		Lng:         msg.Placemark.Lng,
		Description: msg.Description,
	}

	placeURL, placeDone, err := a.ports.Place.Create(a.ctx, place)
	if err != nil {
		a.err = err
		return a, nil
	}

	p := msg.Placemark
	p.Title = msg.Title
	p.Category = msg.Category
	p.PlaceURL = placeURL

	markDone, err := a.ports.Map.CommitPlacemark(a.ctx, a.mapAgg, p)
	if err != nil {
		a.err = err
		return a, nil
	}

	// The commit minted the record ID; the aggregate's last entry
	// carries it.
	marks := a.mapAgg.Placemarks()
	id := marks[len(marks)-1].ID

	a.err = nil
	a.mapView.SetMap(a.mapAgg)
	a.mapView.MarkTransient(id)
	a.mapView.SetPlacing(false)
	a.currentView = messages.ViewBrowsing
	a.prevView = messages.ViewBrowsing

	return a, tea.Batch(
		awaitSettle(id, markDone),
		awaitSettle("", placeDone),
	)
}

// awaitSettle turns a completion channel into a PersistSettled message.
func awaitSettle(id string, done <-chan error) tea.Cmd {
	return func() tea.Msg {
		return messages.PersistSettled{ID: id, Err: <-done}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewBrowsing, messages.ViewPlacing:
		body = a.mapView.View()
	case messages.ViewDetailForm:
		body = a.formView.View()
	case messages.ViewPlaceDetail:
		body = a.detailView.View()
	default:
		body = a.mapView.View()
	}

	if a.err != nil {
		errLine := a.styles.Error.Render("Error: " + a.err.Error())
		return lipgloss.JoinVertical(lipgloss.Left, body, "", errLine)
	}
	return body
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Map returns the session's map aggregate.
func (a *App) Map() *domain.Map {
	return a.mapAgg
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.mapView.SetDimensions(width, height)
}
