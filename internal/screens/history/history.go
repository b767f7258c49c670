package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

type spinnerTickMsg time.Time

// HistoryScreen lists the backend's saved requests. The list is
// fetched once when first opened and refreshed only on demand.
type HistoryScreen struct {
	orch     *orchestrator.Orchestrator
	spinner  components.Spinner
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(orch *orchestrator.Orchestrator) *HistoryScreen {
	return &HistoryScreen{
		orch:     orch,
		spinner:  components.NewSpinner("Loading history..."),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if cmd := s.orch.EnsureHistory(); cmd != nil {
		return tea.Batch(cmd, s.tick())
	}
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) busy() bool {
	return s.orch.Busy(orchestrator.KindHistory)
}

func (s *HistoryScreen) tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.busy() {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.tick()

	case tea.KeyMsg:
		entries := s.orch.History()
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "r":
			if !s.busy() {
				s.selected = 0
				s.expanded = make(map[int]bool)
				return s, tea.Batch(s.orch.RefreshHistory(), s.tick())
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.busy() && !s.orch.HistoryFetched() {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View())
	}

	entries := s.orch.History()
	if s.orch.HistoryFetched() && len(entries) == 0 {
		return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No saved requests yet. Summarize something first!"))
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.busy() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View()))
		b.WriteString("\n\n")
	}

	for i, e := range entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-12s  %s",
			prefix,
			e.Timestamp.Format("Jan 02 15:04"),
			e.ContentType,
			truncate(e.OriginalText, 40))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := resultPreview(e)
			if detail != "" {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Dimmed.Width(min(width-16, 64)).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// resultPreview extracts a short human-readable preview from the
// backend's opaque result payload.
func resultPreview(e api.HistoryEntry) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e.Result, &fields); err != nil {
		return ""
	}

	pick := func(key string) (string, bool) {
		raw, ok := fields[key]
		if !ok {
			return "", false
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}

	switch e.ContentType {
	case "summary":
		if s, ok := pick("summary"); ok {
			return truncate(s, 200)
		}
	case "translation":
		if s, ok := pick("translated_text"); ok {
			return truncate(s, 200)
		}
	case "quiz":
		if raw, ok := fields["questions"]; ok {
			var qs []json.RawMessage
			if err := json.Unmarshal(raw, &qs); err == nil {
				return fmt.Sprintf("%d questions", len(qs))
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	// Cut on runes so multibyte text is never split mid-character.
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
