// Package mapview renders the placemark map as a character grid and
// handles cursor-driven placing and marker selection.
package mapview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/keymap"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/messages"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/styles"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// Viewport span in degrees. The grid always shows this window around
// the viewport centre.
const (
	spanLat = 0.2
	spanLng = 0.4
)

// Default grid size before the first WindowSizeMsg arrives.
const (
	defaultGridWidth  = 48
	defaultGridHeight = 16
)

// View is the map view. It owns the viewport and cursor; the map
// aggregate itself is owned by the app and injected via SetMap.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	mapAgg *domain.Map

	centerLat float64
	centerLng float64

	cursorRow int
	cursorCol int

	gridWidth  int
	gridHeight int

	// placing is true when the map is armed for a new placemark.
	placing bool

	// clickConsumed guards against a second click while the staged one
	// is still in the detail form. Reset when the form resolves.
	clickConsumed bool

	// filter is the active category filter. Empty shows all markers.
	// Filtering is a render predicate only; the aggregate is untouched.
	filter     string
	categories []string

	// transient holds placemark IDs whose persistence has not settled.
	transient map[string]bool

	width  int
	height int
	ready  bool
}

// NewView creates a new map view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		centerLat:  domain.DefaultCenterLat,
		centerLng:  domain.DefaultCenterLng,
		gridWidth:  defaultGridWidth,
		gridHeight: defaultGridHeight,
		cursorRow:  defaultGridHeight / 2,
		cursorCol:  defaultGridWidth / 2,
		transient:  make(map[string]bool),
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetMap injects the map aggregate and recentres the viewport on it.
func (v *View) SetMap(m *domain.Map) {
	v.mapAgg = m
	if m != nil && m.Len() > 0 {
		v.centerLat, v.centerLng = m.Center()
	}
	v.cursorRow = v.gridHeight / 2
	v.cursorCol = v.gridWidth / 2
}

// SetCenter overrides the viewport centre. A map carrying placemarks
// recentres on its last placemark regardless.
func (v *View) SetCenter(lat, lng float64) {
	v.centerLat = lat
	v.centerLng = lng
}

// Map returns the injected aggregate.
func (v *View) Map() *domain.Map {
	return v.mapAgg
}

// SetPlacing arms or disarms placing mode.
func (v *View) SetPlacing(placing bool) {
	v.placing = placing
	if !placing {
		v.clickConsumed = false
	}
}

// Placing returns whether placing mode is armed.
func (v *View) Placing() bool {
	return v.placing
}

// ResetClick releases the click guard after the detail form resolves.
func (v *View) ResetClick() {
	v.clickConsumed = false
}

// ClickConsumed returns whether a staged click is awaiting its form.
func (v *View) ClickConsumed() bool {
	return v.clickConsumed
}

// SetCategories sets the category cycle for the marker filter.
func (v *View) SetCategories(categories []string) {
	v.categories = categories
}

// Filter returns the active category filter.
func (v *View) Filter() string {
	return v.filter
}

// MarkTransient flags a placemark as awaiting persistence.
func (v *View) MarkTransient(id string) {
	v.transient[id] = true
}

// Settle clears the transient flag for a placemark.
func (v *View) Settle(id string) {
	delete(v.transient, id)
}

// CursorCoords returns the coordinates under the cursor.
func (v *View) CursorCoords() (lat, lng float64) {
	return v.coordsAt(v.cursorRow, v.cursorCol)
}

// Update handles messages for the map view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.MapLoaded:
		if msg.Err == nil {
			v.SetMap(msg.Map)
		}
		return v, nil

	case messages.PersistSettled:
		v.Settle(msg.ID)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.cursorRow > 0 {
			v.cursorRow--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.cursorRow < v.gridHeight-1 {
			v.cursorRow++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Left):
		if v.cursorCol > 0 {
			v.cursorCol--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Right):
		if v.cursorCol < v.gridWidth-1 {
			v.cursorCol++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Place):
		v.placing = !v.placing
		next := messages.ViewBrowsing
		if v.placing {
			next = messages.ViewPlacing
		}
		return v, func() tea.Msg {
			return messages.ViewChanged{View: next}
		}

	case keymap.Matches(keyStr, v.keymap.Filter):
		v.cycleFilter()
		filter := v.filter
		return v, func() tea.Msg {
			return messages.CategoryChanged{Category: filter}
		}

	case keymap.Matches(keyStr, v.keymap.Select):
		return v.handleSelect()
	}

	return v, nil
}

// handleSelect confirms the cursor position: a click when placing, a
// marker selection when browsing. A cell already claimed by a marker
// never starts a placement; the click selects the marker instead.
func (v *View) handleSelect() (*View, tea.Cmd) {
	marker := v.markerAt(v.cursorRow, v.cursorCol)

	if v.placing && marker == nil {
		// A click that has been staged must resolve before another
		// can be taken.
		if v.clickConsumed {
			return v, nil
		}
		v.clickConsumed = true
		lat, lng := v.CursorCoords()
		return v, func() tea.Msg {
			return messages.MapClicked{Lat: lat, Lng: lng}
		}
	}

	if marker == nil {
		return v, nil
	}
	p := *marker
	return v, func() tea.Msg {
		return messages.MarkerSelected{Placemark: p}
	}
}

// cycleFilter advances the category filter: all, then each configured
// category in order, then back to all.
func (v *View) cycleFilter() {
	if len(v.categories) == 0 {
		v.filter = ""
		return
	}
	if v.filter == "" {
		v.filter = v.categories[0]
		return
	}
	for i, c := range v.categories {
		if c == v.filter {
			if i == len(v.categories)-1 {
				v.filter = ""
			} else {
				v.filter = v.categories[i+1]
			}
			return
		}
	}
	v.filter = ""
}

// visible reports whether a placemark passes the category filter.
func (v *View) visible(p domain.Placemark) bool {
	return v.filter == "" || p.Category == v.filter
}

// markerAt returns the first visible placemark projected onto the
// given cell, or nil.
func (v *View) markerAt(row, col int) *domain.Placemark {
	if v.mapAgg == nil {
		return nil
	}
	for i, p := range v.mapAgg.Placemarks() {
		if !v.visible(p) {
			continue
		}
		r, c, ok := v.cellFor(p.Lat, p.Lng)
		if ok && r == row && c == col {
			return &v.mapAgg.Placemarks()[i]
		}
	}
	return nil
}

// cellFor projects coordinates onto the grid. ok is false when the
// point falls outside the viewport.
func (v *View) cellFor(lat, lng float64) (row, col int, ok bool) {
	top := v.centerLat + spanLat/2
	left := v.centerLng - spanLng/2

	row = int((top - lat) / spanLat * float64(v.gridHeight))
	col = int((lng - left) / spanLng * float64(v.gridWidth))

	if row < 0 || row >= v.gridHeight || col < 0 || col >= v.gridWidth {
		return 0, 0, false
	}
	return row, col, true
}

// coordsAt is the inverse projection, at the cell centre.
func (v *View) coordsAt(row, col int) (lat, lng float64) {
	top := v.centerLat + spanLat/2
	left := v.centerLng - spanLng/2

	lat = top - (float64(row)+0.5)/float64(v.gridHeight)*spanLat
	lng = left + (float64(col)+0.5)/float64(v.gridWidth)*spanLng
	return lat, lng
}

// View renders the map view.
func (v *View) View() string {
	sections := make([]string, 0, 8)

	sections = append(sections, v.styles.Title.Render("LoMap"), "")

	mode := "browsing"
	if v.placing {
		mode = "placing"
	}
	modeLine := v.styles.Subtitle.Render("mode: " + mode)
	if v.filter != "" {
		modeLine += v.styles.Muted.Render("  filter: " + v.filter)
	}
	sections = append(sections, modeLine, "")

	sections = append(sections, v.renderGrid())

	lat, lng := v.CursorCoords()
	sections = append(sections, "", v.styles.Muted.Render(
		fmt.Sprintf("cursor: %.5f, %.5f", lat, lng)))

	help := "↑↓←→ move  enter select  p place  f filter  q quit"
	sections = append(sections, v.styles.Help.Render(help))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderGrid draws the viewport with markers and cursor.
func (v *View) renderGrid() string {
	rows := make([]string, 0, v.gridHeight)

	for row := 0; row < v.gridHeight; row++ {
		var b strings.Builder
		for col := 0; col < v.gridWidth; col++ {
			b.WriteString(v.renderCell(row, col))
		}
		rows = append(rows, b.String())
	}

	return v.styles.Border.Render(strings.Join(rows, "\n"))
}

// renderCell draws a single cell: cursor over marker over water.
func (v *View) renderCell(row, col int) string {
	if row == v.cursorRow && col == v.cursorCol {
		return v.styles.Cursor.Render("+")
	}
	if marker := v.markerAt(row, col); marker != nil {
		if v.transient[marker.ID] {
			return v.styles.Transient.Render("◆")
		}
		return v.styles.Marker.Render("●")
	}
	return "·"
}

// SetDimensions sets the view dimensions and resizes the grid.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	// Reserve rows for header, mode line, coords and help; columns for
	// the border.
	gw := width - 4
	gh := height - 9
	if gw < 16 {
		gw = 16
	}
	if gh < 8 {
		gh = 8
	}
	v.gridWidth = gw
	v.gridHeight = gh

	if v.cursorRow >= gh {
		v.cursorRow = gh - 1
	}
	if v.cursorCol >= gw {
		v.cursorCol = gw - 1
	}
}

// Ready returns whether the view has received dimensions.
func (v *View) Ready() bool {
	return v.ready
}
