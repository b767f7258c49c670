package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/orchestrator"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/screens/history"
	quizscreen "github.com/abhisek/smartlearn/internal/screens/quiz"
	"github.com/abhisek/smartlearn/internal/screens/summarize"
	"github.com/abhisek/smartlearn/internal/screens/translate"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/abhisek/smartlearn/internal/ui/components"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(orch *orchestrator.Orchestrator, events store.EventRepo) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "SUMMARIZE",
			Description: "Condense study text into its key points",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: summarize.New(orch)}
				}
			},
		},
		{
			Label:       "TRANSLATE",
			Description: "Translate study text into another language",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: translate.New(orch)}
				}
			},
		},
		{
			Label:       "QUIZ ME",
			Description: "Generate a multiple-choice quiz and test yourself",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(orch, events)}
				}
			},
		},
		{
			Label:       "HISTORY",
			Description: "Browse past summaries, translations, and quizzes",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(orch)}
				}
			},
		},
		{
			Label:       "QUIT",
			Description: "",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("SmartLearn")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Your AI study companion")))
	b.WriteString("\n\n\n")

	menu := theme.Card.Render(h.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}
