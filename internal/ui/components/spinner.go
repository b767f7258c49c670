package components

import (
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a tick-driven loading indicator. The owning screen
// schedules its own tick messages and calls Advance on each one.
type Spinner struct {
	Label string
	frame int
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) Spinner {
	return Spinner{Label: label}
}

// Advance moves to the next animation frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the current frame with the label.
func (s Spinner) View() string {
	out := theme.Selected.Render(spinnerFrames[s.frame])
	if s.Label != "" {
		out += " " + theme.Dimmed.Render(s.Label)
	}
	return out
}
