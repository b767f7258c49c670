package summarize

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
)

func newScreen(results ...api.MockResult) (*SummarizeScreen, *orchestrator.Orchestrator) {
	orch := orchestrator.New(api.NewMockClient(results...))
	return New(orch), orch
}

func tabKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab}
}

func TestSummarizeScreen_Title(t *testing.T) {
	s, _ := newScreen()
	if s.Title() != "Summarize" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summarize")
	}
}

func TestSummarizeScreen_TabCyclesFocus(t *testing.T) {
	s, _ := newScreen()

	for i := 1; i < focusCount; i++ {
		s.Update(tabKey())
		if s.focus != i {
			t.Fatalf("focus = %d after %d tabs, want %d", s.focus, i, i)
		}
	}
	s.Update(tabKey())
	if s.focus != focusText {
		t.Errorf("focus = %d after full cycle, want %d", s.focus, focusText)
	}
}

func TestSummarizeScreen_SubmitWithEmptyInput(t *testing.T) {
	s, _ := newScreen()

	for s.focus != focusSubmit {
		s.Update(tabKey())
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command while the submit button is disabled")
	}
}

func TestSummarizeScreen_SubmitIssuesRequest(t *testing.T) {
	s, orch := newScreen(api.MockResult{
		Summary: &api.SummarizeResponse{Summary: "short version"},
	})
	s.input.SetValue("a long passage about cells")

	for s.focus != focusSubmit {
		s.Update(tabKey())
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on submit")
	}
	if !orch.Busy(orchestrator.KindSummarize) {
		t.Error("expected summarize to be busy after submit")
	}
}

func TestSummarizeScreen_ResultShownInView(t *testing.T) {
	s, orch := newScreen(api.MockResult{
		Summary: &api.SummarizeResponse{Summary: "mitochondria are the powerhouse"},
	})

	orch.Apply(orch.Summarize("a long passage", api.DefaultMaxLength, api.DefaultMinLength)())

	view := s.View(100, 30)
	if !strings.Contains(view, "powerhouse") {
		t.Error("expected the summary text in the view")
	}
}
