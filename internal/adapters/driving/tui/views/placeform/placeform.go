// Package placeform provides the detail entry form shown after a map
// click stages a new placemark.
package placeform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/messages"
	"github.com/lomap-labs/lomap-cli/internal/adapters/driving/tui/styles"
	"github.com/lomap-labs/lomap-cli/internal/core/domain"
)

// Form field indices. Fields are visited in this fixed order.
const (
	fieldTitle = iota
	fieldCategory
	fieldDescription
	fieldCount
)

// View is the new-place detail form. It holds the staged placemark the
// map click produced; submit commits it, esc discards it.
type View struct {
	styles *styles.Styles

	staged domain.Placemark

	inputs  []textinput.Model
	focused int

	// fieldErr holds a validation message for the focused field.
	fieldErr string

	width  int
	height int
}

// NewView creates a new detail form view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	inputs := make([]textinput.Model, fieldCount)

	title := textinput.New()
	title.Placeholder = "Name"
	title.CharLimit = 100
	title.Width = 40
	inputs[fieldTitle] = title

	category := textinput.New()
	category.Placeholder = "Category"
	category.CharLimit = 50
	category.Width = 40
	inputs[fieldCategory] = category

	description := textinput.New()
	description.Placeholder = "Description"
	description.CharLimit = 500
	description.Width = 40
	inputs[fieldDescription] = description

	return &View{
		styles: s,
		inputs: inputs,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return textinput.Blink
}

// SetStaged loads the staged placemark and resets the form fields.
func (v *View) SetStaged(p domain.Placemark) {
	v.staged = p
	v.fieldErr = ""
	v.focused = fieldTitle
	for i := range v.inputs {
		v.inputs[i].SetValue("")
		v.inputs[i].Blur()
	}
	v.inputs[fieldTitle].Focus()
}

// Staged returns the placemark the form was opened for.
func (v *View) Staged() domain.Placemark {
	return v.staged
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.FormCancelled{}
		}

	case tea.KeyTab, tea.KeyDown:
		v.focusField((v.focused + 1) % fieldCount)
		return v, nil

	case tea.KeyShiftTab, tea.KeyUp:
		v.focusField((v.focused + fieldCount - 1) % fieldCount)
		return v, nil

	case tea.KeyEnter:
		if v.focused < fieldCount-1 {
			v.focusField(v.focused + 1)
			return v, nil
		}
		return v.submit()
	}

	var cmd tea.Cmd
	v.inputs[v.focused], cmd = v.inputs[v.focused].Update(msg)
	return v, cmd
}

// focusField moves focus to the given field.
func (v *View) focusField(i int) {
	v.inputs[v.focused].Blur()
	v.focused = i
	v.inputs[v.focused].Focus()
}

// submit validates the form and hands it back to the app.
func (v *View) submit() (*View, tea.Cmd) {
	title := strings.TrimSpace(v.inputs[fieldTitle].Value())
	if title == "" {
		v.fieldErr = "name is required"
		v.focusField(fieldTitle)
		return v, nil
	}

	submitted := messages.FormSubmitted{
		Placemark:   v.staged,
		Title:       title,
		Category:    strings.TrimSpace(v.inputs[fieldCategory].Value()),
		Description: strings.TrimSpace(v.inputs[fieldDescription].Value()),
	}
	return v, func() tea.Msg {
		return submitted
	}
}

// View renders the form.
func (v *View) View() string {
	sections := make([]string, 0, 10)

	sections = append(sections, v.styles.Title.Render("New place"), "")
	sections = append(sections, v.styles.Muted.Render(
		fmt.Sprintf("at %.5f, %.5f", v.staged.Lat, v.staged.Lng)), "")

	labels := []string{"Name", "Category", "Description"}
	for i, input := range v.inputs {
		label := v.styles.Normal.Render(labels[i])
		if i == v.focused {
			label = v.styles.Subtitle.Render(labels[i])
		}
		sections = append(sections, label, v.styles.InputField.Render(input.View()))
	}

	if v.fieldErr != "" {
		sections = append(sections, "", v.styles.Error.Render(v.fieldErr))
	}

	sections = append(sections, "",
		v.styles.Help.Render("tab next field  enter submit  esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// FieldErr returns the current validation message.
func (v *View) FieldErr() string {
	return v.fieldErr
}
