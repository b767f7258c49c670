package orchestrator

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/quiz"
)

// Msg is a completion or notification produced by a Cmd. The UI loop
// feeds every Msg back through Apply. It aliases the Bubble Tea
// message type so operation thunks plug straight into screen commands.
type Msg = tea.Msg

// Cmd is a deferred side effect. Network thunks block and are run off
// the UI loop; the returned Msg re-enters it.
type Cmd = tea.Cmd

// Level classifies a Notice for display.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarn          // local validation failures
	LevelError         // backend / transport failures
)

// Notice is a transient user-visible notification.
type Notice struct {
	Level Level
	Text  string
}

// noticeMsg carries an immediate notification, used for validation
// failures that never reach the backend.
type noticeMsg struct {
	notice Notice
}

// summaryDoneMsg is sent when a summarize request settles.
type summaryDoneMsg struct {
	Summary string
	Err     error
}

// translateDoneMsg is sent when a translate request settles.
type translateDoneMsg struct {
	Translated string
	Target     api.Language
	Err        error
}

// quizDoneMsg is sent when a generate-quiz request settles. Gen is the
// request generation captured at issue time; completions for
// superseded generations are dropped.
type quizDoneMsg struct {
	Gen       uint64
	Questions []quiz.Question
	Err       error
}

// historyDoneMsg is sent when a fetch-history request settles.
type historyDoneMsg struct {
	Entries []api.HistoryEntry
	Err     error
}
