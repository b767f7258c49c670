package summarize

import (
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

// spinnerTickMsg animates the loading spinner while a request is in
// flight.
type spinnerTickMsg time.Time

const (
	focusText = iota
	focusMaxLen
	focusMinLen
	focusSubmit
	focusCount
)

// SummarizeScreen lets the user submit study text for summarization
// and shows the latest summary.
type SummarizeScreen struct {
	orch    *orchestrator.Orchestrator
	input   components.TextArea
	maxLen  components.Stepper
	minLen  components.Stepper
	spinner components.Spinner
	focus   int
}

var _ screen.Screen = (*SummarizeScreen)(nil)
var _ screen.KeyHintProvider = (*SummarizeScreen)(nil)

// New creates a new SummarizeScreen.
func New(orch *orchestrator.Orchestrator) *SummarizeScreen {
	s := &SummarizeScreen{
		orch:    orch,
		input:   components.NewTextArea("Paste the text you want summarized...", 0),
		maxLen:  components.NewStepper("Max length", api.DefaultMaxLength, 50, 500, 10),
		minLen:  components.NewStepper("Min length", api.DefaultMinLength, 10, 200, 10),
		spinner: components.NewSpinner("Summarizing..."),
	}
	return s
}

func (s *SummarizeScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *SummarizeScreen) Title() string {
	return "Summarize"
}

func (s *SummarizeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummarizeScreen) busy() bool {
	return s.orch.Busy(orchestrator.KindSummarize)
}

func (s *SummarizeScreen) submitDisabled() bool {
	return s.busy() || s.input.Empty()
}

func (s *SummarizeScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.maxLen.Focused = focus == focusMaxLen
	s.minLen.Focused = focus == focusMinLen
	if focus == focusText {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *SummarizeScreen) submit() tea.Cmd {
	if s.busy() {
		return nil
	}
	return tea.Batch(
		s.orch.Summarize(s.input.Value(), s.maxLen.Value, s.minLen.Value),
		s.tick(),
	)
}

func (s *SummarizeScreen) tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *SummarizeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.busy() {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			if s.focus == focusSubmit && !s.submitDisabled() {
				return s, s.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusText:
		s.input, cmd = s.input.Update(msg)
	case focusMaxLen:
		s.maxLen, cmd = s.maxLen.Update(msg)
	case focusMinLen:
		s.minLen, cmd = s.minLen.Update(msg)
	}
	return s, cmd
}

func (s *SummarizeScreen) View(width, height int) string {
	inner := width - 12
	if inner < 40 {
		inner = 40
	}
	s.input.SetSize(inner, 6)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Paste study text and get a concise summary back.")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	controls := s.maxLen.View() + "      " + s.minLen.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, controls))
	b.WriteString("\n\n")

	button := components.Button{
		Label:    "Summarize",
		Focused:  s.focus == focusSubmit,
		Disabled: s.submitDisabled(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))
	b.WriteString("\n\n")

	if s.busy() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View()))
		b.WriteString("\n")
	}

	if summary := s.orch.Summary(); summary != "" {
		panel := theme.ResultPanel.Width(inner).Render(
			theme.Subtitle.Render("Summary") + "\n\n" + theme.Body.Render(summary))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panel))
		b.WriteString("\n")
	}

	return b.String()
}
