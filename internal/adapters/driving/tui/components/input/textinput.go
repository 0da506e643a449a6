// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/craftdex/craftdex/internal/adapters/driving/tui/styles"
)

// ItemInput wraps a bubbles textinput for typing an item id.
type ItemInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewItemInput creates a focused item input.
func NewItemInput(s *styles.Styles) *ItemInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "item id, e.g. iron_ingot or #forge:ingots"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &ItemInput{
		textinput: ti,
		styles:    s,
		label:     "Item: ",
		width:     50,
	}
}

// Init starts the cursor blink.
func (i *ItemInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (i *ItemInput) Update(msg tea.Msg) (*ItemInput, tea.Cmd) {
	var cmd tea.Cmd
	i.textinput, cmd = i.textinput.Update(msg)
	return i, cmd
}

// View renders the label and the input box.
func (i *ItemInput) View() string {
	label := i.styles.Title.Render(i.label)
	field := i.styles.InputField.Render(i.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// SetLabel changes the label shown before the input.
func (i *ItemInput) SetLabel(label string) {
	i.label = label
}

// Value returns the current input value.
func (i *ItemInput) Value() string {
	return i.textinput.Value()
}

// SetValue sets the input value.
func (i *ItemInput) SetValue(value string) {
	i.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (i *ItemInput) Focus() tea.Cmd {
	return i.textinput.Focus()
}

// Blur removes focus from the input.
func (i *ItemInput) Blur() {
	i.textinput.Blur()
}

// Focused returns whether the input is focused.
func (i *ItemInput) Focused() bool {
	return i.textinput.Focused()
}

// SetWidth sets the width of the input, leaving room for the label.
func (i *ItemInput) SetWidth(width int) {
	i.width = width
	inputWidth := width - lipgloss.Width(i.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.textinput.Width = inputWidth
}

// Width returns the current width.
func (i *ItemInput) Width() int {
	return i.width
}
