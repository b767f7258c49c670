// Package orchestrator mediates between user actions and the backend.
// It owns the per-operation busy flags, the result slots (summary
// text, translation text, quiz session, history list), and the quiz
// request generation counter.
//
// All state is touched only from the single UI update loop: operations
// mutate state synchronously and hand back a Cmd thunk that performs
// the blocking network call off-loop, and Apply folds the resulting
// completion message back into the state. Completions are applied in
// arrival order, each to its own slot. In-flight requests are never
// cancelled; a superseded quiz completion is recognized by its stale
// generation and dropped.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/quiz"
)

// Kind identifies one of the four backend operations.
type Kind string

const (
	KindSummarize Kind = "summarize"
	KindTranslate Kind = "translate"
	KindQuiz      Kind = "quiz"
	KindHistory   Kind = "history"
)

// Orchestrator holds the client and all operation state.
type Orchestrator struct {
	client api.Client

	busy map[Kind]bool

	summary     string
	translation string
	targetLang  api.Language
	session     *quiz.Session
	history     []api.HistoryEntry
	historyDone bool

	// quizGen increases on every quiz request and every discard; a
	// quiz completion is applied only if its captured generation still
	// matches, so a response superseded by a newer request or an
	// explicit discard never resurfaces.
	quizGen uint64
}

// New creates an Orchestrator around the given client.
func New(client api.Client) *Orchestrator {
	return &Orchestrator{
		client: client,
		busy:   make(map[Kind]bool),
	}
}

// Busy reports whether a request of the given kind is in flight. Each
// screen disables only its own submit control; the flags are
// independent because the result slots are.
func (o *Orchestrator) Busy(kind Kind) bool { return o.busy[kind] }

// Summary returns the latest successful summary, or "".
func (o *Orchestrator) Summary() string { return o.summary }

// Translation returns the latest successful translation and the
// language it was produced for.
func (o *Orchestrator) Translation() (string, api.Language) {
	return o.translation, o.targetLang
}

// Session returns the current quiz session, or nil when absent.
func (o *Orchestrator) Session() *quiz.Session { return o.session }

// History returns the last fetched history entries.
func (o *Orchestrator) History() []api.HistoryEntry { return o.history }

// HistoryFetched reports whether history has been loaded at least once.
func (o *Orchestrator) HistoryFetched() bool { return o.historyDone }

// Summarize issues a summarize request. Empty input (after trimming)
// is a local validation failure: the user is notified and the backend
// is never contacted.
func (o *Orchestrator) Summarize(text string, maxLen, minLen int) Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return warn("Enter some text to summarize first.")
	}

	o.busy[KindSummarize] = true
	req := api.SummarizeRequest{Text: text, MaxLength: maxLen, MinLength: minLen}
	return func() Msg {
		resp, err := o.client.Summarize(context.Background(), req)
		if err != nil {
			return summaryDoneMsg{Err: err}
		}
		return summaryDoneMsg{Summary: resp.Summary}
	}
}

// Translate issues a translate request into the target with the given
// code. Targets are a closed choice in the UI; an unknown code is
// treated like any other validation failure.
func (o *Orchestrator) Translate(text, targetCode string) Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return warn("Enter some text to translate first.")
	}
	target, ok := api.LookupTarget(targetCode)
	if !ok {
		return warn(fmt.Sprintf("Unsupported target language %q.", targetCode))
	}

	o.busy[KindTranslate] = true
	req := api.TranslateRequest{Text: text, SourceLang: api.SourceLang, TargetLang: target.Code}
	return func() Msg {
		resp, err := o.client.Translate(context.Background(), req)
		if err != nil {
			return translateDoneMsg{Err: err}
		}
		return translateDoneMsg{Translated: resp.TranslatedText, Target: target}
	}
}

// GenerateQuiz issues a generate-quiz request. The current session is
// discarded immediately, before the network call begins, so a slow
// prior quiz can never reappear against the new request. numQuestions
// is clamped to the representable range as a backstop behind the UI
// stepper.
func (o *Orchestrator) GenerateQuiz(text string, numQuestions int) Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return warn("Enter some text to build a quiz from first.")
	}

	if numQuestions < api.MinQuestions {
		numQuestions = api.MinQuestions
	}
	if numQuestions > api.MaxQuestions {
		numQuestions = api.MaxQuestions
	}

	o.session = nil
	o.quizGen++
	gen := o.quizGen
	o.busy[KindQuiz] = true

	req := api.QuizRequest{Text: text, NumQuestions: numQuestions}
	return func() Msg {
		resp, err := o.client.GenerateQuiz(context.Background(), req)
		if err != nil {
			return quizDoneMsg{Gen: gen, Err: err}
		}
		return quizDoneMsg{Gen: gen, Questions: resp.Questions}
	}
}

// DiscardQuiz drops the current session: quiz, answers, and reveal
// flag reset together. Any in-flight generation is superseded; its
// completion will be ignored.
func (o *Orchestrator) DiscardQuiz() {
	o.session = nil
	o.quizGen++
	o.busy[KindQuiz] = false
}

// EnsureHistory fetches history on first use only. Returns nil when
// history is already loaded or a fetch is in flight.
func (o *Orchestrator) EnsureHistory() Cmd {
	if o.historyDone || o.busy[KindHistory] {
		return nil
	}
	return o.RefreshHistory()
}

// RefreshHistory issues a fetch-history request unconditionally.
func (o *Orchestrator) RefreshHistory() Cmd {
	o.busy[KindHistory] = true
	return func() Msg {
		entries, err := o.client.History(context.Background())
		if err != nil {
			return historyDoneMsg{Err: err}
		}
		return historyDoneMsg{Entries: entries}
	}
}

// Apply folds a completion message into the state. It returns the
// transient notice to show, if any, and whether the message belonged
// to the orchestrator at all. Failures leave the slots untouched, so
// an earlier result stays on screen.
func (o *Orchestrator) Apply(msg Msg) (*Notice, bool) {
	switch m := msg.(type) {
	case noticeMsg:
		n := m.notice
		return &n, true

	case summaryDoneMsg:
		o.busy[KindSummarize] = false
		if m.Err != nil {
			return errNotice(m.Err), true
		}
		o.summary = m.Summary
		return &Notice{Level: LevelSuccess, Text: "Summary ready."}, true

	case translateDoneMsg:
		o.busy[KindTranslate] = false
		if m.Err != nil {
			return errNotice(m.Err), true
		}
		o.translation = m.Translated
		o.targetLang = m.Target
		return &Notice{Level: LevelSuccess, Text: fmt.Sprintf("Translated to %s.", m.Target.Name)}, true

	case quizDoneMsg:
		if m.Gen != o.quizGen {
			// Superseded by a newer request or a discard: drop
			// silently, including the busy flag, which now belongs to
			// the newer request.
			return nil, true
		}
		o.busy[KindQuiz] = false
		if m.Err != nil {
			return errNotice(m.Err), true
		}
		o.session = quiz.NewSession(m.Questions)
		return &Notice{
			Level: LevelSuccess,
			Text:  fmt.Sprintf("Quiz ready: %d questions.", len(m.Questions)),
		}, true

	case historyDoneMsg:
		o.busy[KindHistory] = false
		if m.Err != nil {
			return errNotice(m.Err), true
		}
		o.history = m.Entries
		o.historyDone = true
		return &Notice{Level: LevelSuccess, Text: "History loaded."}, true
	}

	return nil, false
}

// warn wraps a validation message as an immediate Cmd.
func warn(text string) Cmd {
	return func() Msg {
		return noticeMsg{notice: Notice{Level: LevelWarn, Text: text}}
	}
}

// errNotice converts a request failure into a user-facing notice.
func errNotice(err error) *Notice {
	return &Notice{Level: LevelError, Text: userMessage(err)}
}

// userMessage maps the error taxonomy onto short user-facing text.
func userMessage(err error) string {
	var backend *api.ErrBackend
	if errors.As(err, &backend) {
		if backend.Detail != "" {
			return backend.Detail
		}
		return fmt.Sprintf("The backend rejected the request (HTTP %d).", backend.Status)
	}

	var unreachable *api.ErrUnreachable
	if errors.As(err, &unreachable) {
		return "Cannot reach the SmartLearn backend. Is it running?"
	}

	var invalid *api.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return "The backend returned an unexpected response."
	}

	return err.Error()
}
