package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// Stepper is a numeric value adjusted in fixed steps between a minimum
// and a maximum. Values are clamped, never wrapped.
type Stepper struct {
	Title   string
	Value   int
	Min     int
	Max     int
	Step    int
	Focused bool
}

// NewStepper builds a stepper with the given bounds. The initial value
// is clamped into [min, max].
func NewStepper(title string, value, min, max, step int) Stepper {
	s := Stepper{Title: title, Value: value, Min: min, Max: max, Step: step}
	s.Value = s.clamp(s.Value)
	return s
}

func (s Stepper) clamp(v int) int {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Update handles key messages when focused.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h", "-":
			s.Value = s.clamp(s.Value - s.Step)
		case "right", "l", "+", "=":
			s.Value = s.clamp(s.Value + s.Step)
		}
	}
	return s, nil
}

// View renders the stepper as "Title: ◀ n ▶".
func (s Stepper) View() string {
	value := fmt.Sprintf("◀ %d ▶", s.Value)
	if s.Focused {
		return theme.Body.Render(s.Title+": ") + theme.Selected.Render(value)
	}
	return theme.Body.Render(s.Title+": ") + theme.Dimmed.Render(value)
}
