package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
	qz "github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// spinnerTickMsg animates the loading spinner during generation.
type spinnerTickMsg time.Time

// resultSavedMsg is sent after a revealed session has been written to
// the local activity log.
type resultSavedMsg struct {
	Err error
}

const (
	focusText = iota
	focusCount
	focusSubmit
	focusFields
)

// QuizScreen drives the whole quiz flow: setup, answering, and the
// revealed score view. Which of the three shows is derived from the
// orchestrator's session slot, never stored separately.
type QuizScreen struct {
	orch   *orchestrator.Orchestrator
	events store.EventRepo

	input   components.TextArea
	count   components.Stepper
	spinner components.Spinner
	focus   int

	// lastSession tracks the session pointer so per-question cursors
	// reset when a new quiz arrives.
	lastSession *qz.Session
	question    int
	cursor      int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(orch *orchestrator.Orchestrator, events store.EventRepo) *QuizScreen {
	return &QuizScreen{
		orch:    orch,
		events:  events,
		input:   components.NewTextArea("Paste the text to build a quiz from...", 0),
		count:   components.NewStepper("Questions", api.DefaultQuestions, api.MinQuestions, api.MaxQuestions, 1),
		spinner: components.NewSpinner("Generating quiz..."),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.orch.Session() == nil {
		return s.input.Focus()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	sess := s.orch.Session()
	switch {
	case sess == nil:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.Revealed():
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "X", Description: "New quiz"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "↑↓", Description: "Option"},
			{Key: "A–D", Description: "Choose"},
			{Key: "S", Description: "Submit"},
			{Key: "X", Description: "Discard"},
		}
	}
}

func (s *QuizScreen) busy() bool {
	return s.orch.Busy(orchestrator.KindQuiz)
}

// syncSession resets the question and option cursors whenever the
// orchestrator's session slot changes identity.
func (s *QuizScreen) syncSession() {
	if sess := s.orch.Session(); sess != s.lastSession {
		s.lastSession = sess
		s.question = 0
		s.cursor = 0
	}
}

func (s *QuizScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.count.Focused = focus == focusCount
	if focus == focusText {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

func (s *QuizScreen) generate() tea.Cmd {
	if s.busy() {
		return nil
	}
	return tea.Batch(
		s.orch.GenerateQuiz(s.input.Value(), s.count.Value),
		s.tick(),
	)
}

func (s *QuizScreen) tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// saveResult persists the revealed session to the activity log.
func (s *QuizScreen) saveResult(sess *qz.Session) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.QuizResultEventData{
		SessionID:     sess.ID,
		QuestionCount: len(sess.Questions),
		CorrectCount:  sess.Score(),
	}
	return func() tea.Msg {
		err := s.events.AppendQuizResult(context.Background(), data)
		return resultSavedMsg{Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.syncSession()

	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !s.busy() {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.tick()

	case resultSavedMsg:
		// A failed log write never blocks the score view.
		_ = msg.Err
		return s, nil

	case tea.KeyMsg:
		if sess := s.orch.Session(); sess != nil {
			return s.updateSession(sess, msg)
		}
		return s.updateSetup(msg)
	}

	if s.orch.Session() == nil {
		var cmd tea.Cmd
		switch s.focus {
		case focusText:
			s.input, cmd = s.input.Update(msg)
		case focusCount:
			s.count, cmd = s.count.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) updateSetup(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusFields)
	case "shift+tab":
		return s, s.setFocus((s.focus + focusFields - 1) % focusFields)
	case "enter":
		if s.focus == focusSubmit && !s.busy() && !s.input.Empty() {
			return s, s.generate()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusText:
		s.input, cmd = s.input.Update(msg)
	case focusCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *QuizScreen) updateSession(sess *qz.Session, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "p":
		if s.question > 0 {
			s.question--
			s.cursor = 0
		}
		return s, nil
	case "right", "n":
		if s.question < len(sess.Questions)-1 {
			s.question++
			s.cursor = 0
		}
		return s, nil
	case "x":
		// Discard works in both the answering and the score view.
		s.orch.DiscardQuiz()
		s.syncSession()
		return s, s.setFocus(focusText)
	}

	if sess.Revealed() {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < qz.OptionCount-1 {
			s.cursor++
		}
	case "enter", " ":
		sess.SelectAnswer(s.question, qz.LabelAt(s.cursor))
	case "a", "b", "c", "d":
		sess.SelectAnswer(s.question, strings.ToUpper(msg.String()))
	case "s":
		if sess.Submit() {
			return s, s.saveResult(sess)
		}
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	s.syncSession()

	sess := s.orch.Session()
	if sess == nil {
		return s.viewSetup(width)
	}
	if sess.Revealed() {
		return s.viewRevealed(sess, width)
	}
	return s.viewActive(sess, width)
}

func (s *QuizScreen) viewSetup(width int) string {
	inner := width - 12
	if inner < 40 {
		inner = 40
	}
	s.input.SetSize(inner, 6)

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("Build a multiple-choice quiz from your study text.")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.count.View()))
	b.WriteString("\n\n")

	button := components.Button{
		Label:    "Generate Quiz",
		Focused:  s.focus == focusSubmit,
		Disabled: s.busy() || s.input.Empty(),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button.View()))
	b.WriteString("\n\n")

	if s.busy() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.spinner.View()))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) viewActive(sess *qz.Session, width int) string {
	q := sess.Questions[s.question]

	var b strings.Builder
	b.WriteString("\n")

	progress := fmt.Sprintf("Question %d of %d    •    %d of %d answered",
		s.question+1, len(sess.Questions), sess.AnsweredCount(), len(sess.Questions))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(progress)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(min(width-8, 70)).Render(q.Prompt)))
	b.WriteString("\n\n")

	opts := components.OptionList{Session: sess, Index: s.question, Cursor: s.cursor}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.View()))
	b.WriteString("\n")

	if sess.Complete() {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("All questions answered. Press S to submit.")))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) viewRevealed(sess *qz.Session, width int) string {
	var b strings.Builder
	b.WriteString("\n")

	score := fmt.Sprintf("Score: %d / %d", sess.Score(), len(sess.Questions))
	style := theme.Correct
	if sess.Score()*2 < len(sess.Questions) {
		style = theme.Incorrect
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(score)))
	b.WriteString("\n\n")

	q := sess.Questions[s.question]
	progress := fmt.Sprintf("Question %d of %d", s.question+1, len(sess.Questions))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(progress)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(min(width-8, 70)).Render(q.Prompt)))
	b.WriteString("\n\n")

	opts := components.OptionList{Session: sess, Index: s.question, Cursor: -1, ShowHint: true}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.View()))
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
