package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// Button is a styled action button. A disabled button renders dimmed
// and ignores key presses; screens disable their submit button while
// their operation is in flight or its preconditions fail.
type Button struct {
	Label    string
	Focused  bool
	Disabled bool
	OnPress  func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, OnPress: onPress}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.Disabled {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "enter" && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(label)
	case b.Focused:
		return theme.ButtonActive.Render("▸" + label)
	default:
		return theme.ButtonInactive.Render(label)
	}
}
