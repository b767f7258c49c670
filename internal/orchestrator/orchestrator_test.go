package orchestrator

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/quiz"
)

func questions(prompts ...string) []quiz.Question {
	qs := make([]quiz.Question, 0, len(prompts))
	for _, p := range prompts {
		qs = append(qs, quiz.Question{
			Prompt:        p,
			Options:       []string{"A. one", "B. two", "C. three", "D. four"},
			CorrectAnswer: "A",
			Explanation:   "because",
		})
	}
	return qs
}

func TestValidation_ShortCircuitsWithoutRequest(t *testing.T) {
	client := api.NewMockClient()
	o := New(client)

	cmds := []Cmd{
		o.Summarize("", api.DefaultMaxLength, api.DefaultMinLength),
		o.Translate("   ", "es"),
		o.GenerateQuiz("", 5),
	}

	for i, cmd := range cmds {
		notice, handled := o.Apply(cmd())
		if !handled {
			t.Errorf("cmd %d: validation message not handled", i)
			continue
		}
		if notice == nil || notice.Level != LevelWarn {
			t.Errorf("cmd %d: notice = %+v, want LevelWarn", i, notice)
		}
	}

	if client.CallCount() != 0 {
		t.Errorf("backend called %d times for empty input, want 0", client.CallCount())
	}
	if o.Busy(KindSummarize) || o.Busy(KindTranslate) || o.Busy(KindQuiz) {
		t.Error("validation failure must not set busy flags")
	}
}

func TestSummarize_SuccessReplacesSlot(t *testing.T) {
	client := api.NewMockClient(api.MockResult{
		Summary: &api.SummarizeResponse{Summary: "short"},
	})
	o := New(client)

	cmd := o.Summarize("some long text", api.DefaultMaxLength, api.DefaultMinLength)
	if !o.Busy(KindSummarize) {
		t.Error("summarize must mark its kind busy while in flight")
	}

	notice, handled := o.Apply(cmd())
	if !handled {
		t.Fatal("summary completion not handled")
	}
	if notice == nil || notice.Level != LevelSuccess {
		t.Errorf("notice = %+v, want success", notice)
	}
	if o.Summary() != "short" {
		t.Errorf("Summary = %q, want %q", o.Summary(), "short")
	}
	if o.Busy(KindSummarize) {
		t.Error("busy flag must clear on completion")
	}
}

func TestFailure_IsNonDestructive(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Summary: &api.SummarizeResponse{Summary: "first"}},
		api.MockResult{Err: &api.ErrBackend{Status: 503, Detail: "model not loaded"}},
	)
	o := New(client)

	o.Apply(o.Summarize("text one", 0, 0)())

	notice, _ := o.Apply(o.Summarize("text two", 0, 0)())
	if notice == nil || notice.Level != LevelError {
		t.Fatalf("notice = %+v, want error", notice)
	}
	if notice.Text != "model not loaded" {
		t.Errorf("notice text = %q, want backend detail", notice.Text)
	}
	if o.Summary() != "first" {
		t.Errorf("failed request clobbered the slot: Summary = %q, want %q", o.Summary(), "first")
	}
	if o.Busy(KindSummarize) {
		t.Error("busy flag must clear on failure")
	}
}

func TestBusyFlags_PerKind(t *testing.T) {
	client := api.NewMockClient()
	o := New(client)

	o.Summarize("text", 0, 0)

	if !o.Busy(KindSummarize) {
		t.Error("summarize busy flag not set")
	}
	if o.Busy(KindTranslate) || o.Busy(KindQuiz) || o.Busy(KindHistory) {
		t.Error("busy flags must be independent per kind")
	}
}

func TestSlots_Independent(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Translation: &api.TranslateResponse{TranslatedText: "hola", TargetLang: "es"}},
		api.MockResult{Summary: &api.SummarizeResponse{Summary: "resumen"}},
	)
	o := New(client)

	// A issued before B, but B's response arrives first.
	cmdA := o.Summarize("texto", 0, 0)
	cmdB := o.Translate("texto", "es")

	msgB := cmdB() // mock is FIFO: first invocation takes the first result
	msgA := cmdA()

	o.Apply(msgB)
	o.Apply(msgA)

	if got, _ := o.Translation(); got != "hola" {
		t.Errorf("Translation = %q, want %q", got, "hola")
	}
	if o.Summary() != "resumen" {
		t.Errorf("Summary = %q, want %q", o.Summary(), "resumen")
	}
}

func TestGenerateQuiz_DiscardsSessionBeforeRequestResolves(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("q1")}},
	)
	o := New(client)

	o.Apply(o.GenerateQuiz("text", 1)())
	if o.Session() == nil {
		t.Fatal("expected a session after the first quiz")
	}

	// Issuing a new request discards the session synchronously, before
	// any response.
	o.GenerateQuiz("more text", 1)
	if o.Session() != nil {
		t.Error("old session must be discarded the moment a new request is issued")
	}
}

func TestGenerateQuiz_LastIssuedWins(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("old question")}},
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("new question")}},
	)
	o := New(client)

	cmdOld := o.GenerateQuiz("text", 1)
	cmdNew := o.GenerateQuiz("text", 1)

	msgOld := cmdOld() // resolves first, takes the "old question" result
	msgNew := cmdNew()

	// Old response lands after the newer request was issued and
	// settled: it must be ignored no matter the arrival order.
	o.Apply(msgNew)
	o.Apply(msgOld)

	s := o.Session()
	if s == nil {
		t.Fatal("expected a session once both requests settled")
	}
	if s.Questions[0].Prompt != "new question" {
		t.Errorf("session holds %q, want the last-issued request's quiz", s.Questions[0].Prompt)
	}
	if o.Busy(KindQuiz) {
		t.Error("busy flag must clear once the current generation settles")
	}
}

func TestQuizResponse_AfterDiscard_Ignored(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("stale")}},
	)
	o := New(client)

	cmd := o.GenerateQuiz("text", 1)
	o.DiscardQuiz()

	notice, handled := o.Apply(cmd())
	if !handled {
		t.Fatal("stale quiz completion not handled")
	}
	if notice != nil {
		t.Errorf("stale completion produced a notice: %+v", notice)
	}
	if o.Session() != nil {
		t.Error("discarded generation must not populate the session")
	}
	if o.Busy(KindQuiz) {
		t.Error("discard must clear the quiz busy flag")
	}
}

func TestGenerateQuiz_ClampsCount(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("q")}},
		api.MockResult{Quiz: &api.QuizResponse{Questions: questions("q")}},
	)
	o := New(client)

	o.GenerateQuiz("text", 0)()
	o.GenerateQuiz("text", 11)()

	if n := len(client.Calls); n != 2 {
		t.Fatalf("expected 2 backend calls, got %d", n)
	}
}

func TestHistory_FetchedOnce(t *testing.T) {
	client := api.NewMockClient(api.MockResult{
		History: []api.HistoryEntry{{ID: "1", ContentType: "summary"}},
	})
	o := New(client)

	cmd := o.EnsureHistory()
	if cmd == nil {
		t.Fatal("first EnsureHistory must issue a fetch")
	}
	o.Apply(cmd())

	if !o.HistoryFetched() {
		t.Error("HistoryFetched = false after successful load")
	}
	if len(o.History()) != 1 {
		t.Errorf("History length = %d, want 1", len(o.History()))
	}
	if o.EnsureHistory() != nil {
		t.Error("EnsureHistory must be a no-op once loaded")
	}

	// Explicit refresh still goes through.
	client.AddResult(api.MockResult{History: nil})
	if o.RefreshHistory() == nil {
		t.Error("RefreshHistory must always issue a fetch")
	}
}

func TestHistory_FailureKeepsEntries(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{History: []api.HistoryEntry{{ID: "1"}}},
		api.MockResult{Err: &api.ErrUnreachable{}},
	)
	o := New(client)

	o.Apply(o.RefreshHistory()())
	notice, _ := o.Apply(o.RefreshHistory()())

	if notice == nil || notice.Level != LevelError {
		t.Fatalf("notice = %+v, want error", notice)
	}
	if len(o.History()) != 1 {
		t.Error("failed refresh must keep previously loaded entries")
	}
}

func TestApply_IgnoresForeignMessages(t *testing.T) {
	o := New(api.NewMockClient())

	type otherMsg struct{}
	if _, handled := o.Apply(otherMsg{}); handled {
		t.Error("Apply claimed a message it does not own")
	}
}

func TestOperationCmds_RunAsTeaCommands(t *testing.T) {
	client := api.NewMockClient(api.MockResult{
		Summary: &api.SummarizeResponse{Summary: "short form"},
	})
	o := New(client)

	// Screens hand these thunks to the Bubble Tea runtime unchanged.
	var cmd tea.Cmd = o.Summarize("a long passage of text", api.DefaultMaxLength, api.DefaultMinLength)
	if !o.Busy(KindSummarize) {
		t.Fatal("Summarize did not mark the kind busy")
	}

	notice, handled := o.Apply(cmd())
	if !handled {
		t.Fatal("completion message not handled")
	}
	if notice == nil || notice.Level != LevelSuccess {
		t.Fatalf("notice = %+v, want LevelSuccess", notice)
	}
	if o.Busy(KindSummarize) {
		t.Error("kind still busy after completion")
	}
	if got := o.Summary(); got != "short form" {
		t.Errorf("Summary() = %q, want %q", got, "short form")
	}
}
