package translate

import (
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

const (
	focusText = iota
	focusLang
	focusSubmit
	focusCount
)

// TranslateScreen lets the user translate study text into one of the
// supported target languages.
type TranslateScreen struct {
	orch    *orchestrator.Orchestrator
	input   components.TextArea
	lang    components.Picker
	spinner components.Spinner
	focus   int
}

var _ screen.Screen = (*TranslateScreen)(nil)
var _ screen.KeyHintProvider = (*TranslateScreen)(nil)

// New creates a new TranslateScreen.
func New(orch *orchestrator.Orchestrator) *TranslateScreen {
	items := make([]components.PickerItem, len(api.Targets))
	for i, l := range api.Targets {
		items[i] = components.PickerItem{Value: l.Code, Label: l.Name}
	}

	return &TranslateScreen{
		orch:    orch,
		input:   components.NewTextArea("Paste the text you want translated...", 0),
		lang:    components.NewPicker("Target", items),
		spinner: components.NewSpinner("Translating..."),
	}
}

func (s *TranslateScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *TranslateScreen) Title() string {
	return "Translate"
}

func (s *TranslateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Language"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TranslateScreen) busy() bool {
	return s.orch.Busy(orchestrator.KindTranslate)
}

func (s *TranslateScreen) submitDisabled() bool {
	return s.busy() || s.input.Empty()
}

func (s *TranslateScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.lang.Focused = focus == focusLang
	if focus == focusText {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *TranslateScreen) submit() tea.Cmd {
	if s.busy() {
		return nil
	}
	return tea.Batch(
		s.orch.Translate(s.input.Value(), s.lang.Selected().Value),
		s.tick(),
	)
}

func (s *TranslateScreen) tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *TranslateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
	case focusLang:
		s.lang, cmd = s.lang.Update(msg)
	}
	return s, cmd
}

func (s *TranslateScreen) View(width, height int) string {
	inner := width - 12
	if inner < 40 {
		inner = 40
	}
	s.input.SetSize(inner, 6)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Translate English study text into another language.")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.lang.View()))
	b.WriteString("\n\n")

	button := components.Button{
		Label:    "Translate",
		Focused:  s.focus == focusSubmit,
		Disabled: s.submitDisabled(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))
	b.WriteString("\n\n")

	if s.busy() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View()))
		b.WriteString("\n")
	}

	if translated, target := s.orch.Translation(); translated != "" {
		title := fmt.Sprintf("Translation (%s)", target.Name)
		panel := theme.ResultPanel.Width(inner).Render(
			theme.Subtitle.Render(title) + "\n\n" + theme.Body.Render(translated))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, panel))
		b.WriteString("\n")
	}

	return b.String()
}
