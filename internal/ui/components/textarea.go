package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line study text entry.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a styled multi-line input.
func NewTextArea(placeholder string, charLimit int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	if charLimit > 0 {
		ta.CharLimit = charLimit
	}
	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return nil
}

// Focus gives the textarea keyboard focus.
func (t *TextArea) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextArea) Blur() {
	t.Model.Blur()
}

// Focused reports whether the textarea has focus.
func (t TextArea) Focused() bool {
	return t.Model.Focused()
}

// SetSize resizes the textarea.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the textarea.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetValue replaces the current input value.
func (t *TextArea) SetValue(s string) {
	t.Model.SetValue(s)
}

// Empty reports whether the input is blank after trimming whitespace.
func (t TextArea) Empty() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}
