package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
	"github.com/abhisek/smartlearn/internal/router"
	"github.com/abhisek/smartlearn/internal/screen"
	"github.com/abhisek/smartlearn/internal/screens/home"
	"github.com/abhisek/smartlearn/internal/store"
	"github.com/abhisek/smartlearn/internal/ui/layout"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// noticeDuration is how long a transient notice stays on screen.
const noticeDuration = 4 * time.Second

// noticeExpiredMsg clears the notice banner. The sequence number
// keeps an old expiry from clearing a newer notice.
type noticeExpiredMsg struct {
	seq int
}

// Options carries the dependencies for the TUI.
type Options struct {
	Client api.Client
	Events store.EventRepo
}

// AppModel is the root Bubble Tea model. All backend completions pass
// through the orchestrator here, before routing, so screens only ever
// observe settled state.
type AppModel struct {
	router *router.Router
	orch   *orchestrator.Orchestrator

	width  int
	height int

	notice    *orchestrator.Notice
	noticeSeq int
}

func newAppModel(opts Options) AppModel {
	orch := orchestrator.New(opts.Client)
	return AppModel{
		router: router.New(home.New(orch, opts.Events)),
		orch:   orch,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	var expire tea.Cmd
	if notice, handled := m.orch.Apply(msg); handled && notice != nil {
		m.notice = notice
		m.noticeSeq++
		seq := m.noticeSeq
		expire = tea.Tick(noticeDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})
	}

	// Orchestrator messages still reach the active screen so it can
	// react to its slot changing.
	cmd := m.router.Update(msg)
	return m, tea.Batch(expire, cmd)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	noticeLine := ""
	if m.notice != nil {
		noticeLine = layout.RenderNotice(m.notice.Text, noticeStyle(m.notice.Level), m.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	noticeHeight := 0
	if noticeLine != "" {
		noticeHeight = lipgloss.Height(noticeLine) + 1
	}

	contentHeight := m.height - headerHeight - footerHeight - noticeHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	styledContent := lipgloss.NewStyle().
		Width(m.width).
		Height(contentHeight).
		Render(content)

	frame := header + "\n" + styledContent + "\n"
	if noticeLine != "" {
		frame += noticeLine + "\n"
	}
	frame += footer

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func noticeStyle(level orchestrator.Level) lipgloss.Style {
	switch level {
	case orchestrator.LevelSuccess:
		return theme.NoticeSuccess
	case orchestrator.LevelWarn:
		return theme.NoticeWarn
	default:
		return theme.NoticeError
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
