package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
	qz "github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizResults []store.QuizResultEventData
}

func (m *mockEventRepo) AppendRequest(_ context.Context, _ store.RequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryRequests(_ context.Context, _ store.QueryOpts) ([]store.RequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) RequestUsage(_ context.Context) ([]store.RequestUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendQuizResult(_ context.Context, data store.QuizResultEventData) error {
	m.quizResults = append(m.quizResults, data)
	return nil
}
func (m *mockEventRepo) QueryQuizResults(_ context.Context, _ store.QueryOpts) ([]store.QuizResultRecord, error) {
	return nil, nil
}

func testQuestions() []qz.Question {
	return []qz.Question{
		{
			Prompt:        "What powers photosynthesis?",
			Options:       []string{"A. Sunlight", "B. Soil", "C. Wind", "D. Gravity"},
			CorrectAnswer: "A",
		},
		{
			Prompt:        "Where does it occur?",
			Options:       []string{"A. Roots", "B. Chloroplasts", "C. Bark", "D. Flowers"},
			CorrectAnswer: "B",
		},
	}
}

// newActiveScreen builds a screen whose orchestrator already holds a
// fresh session over testQuestions.
func newActiveScreen(t *testing.T, repo store.EventRepo) (*QuizScreen, *orchestrator.Orchestrator) {
	t.Helper()

	client := api.NewMockClient(api.MockResult{
		Quiz: &api.QuizResponse{Questions: testQuestions()},
	})
	orch := orchestrator.New(client)

	cmd := orch.GenerateQuiz("photosynthesis notes", 2)
	if notice, ok := orch.Apply(cmd()); !ok || notice == nil {
		t.Fatal("expected quiz completion to be applied")
	}
	if orch.Session() == nil {
		t.Fatal("expected a session after generation")
	}

	return New(orch, repo), orch
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestQuizScreen_SetupViewWithoutSession(t *testing.T) {
	orch := orchestrator.New(api.NewMockClient())
	s := New(orch, nil)

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty setup view")
	}
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_SelectAnswerByLetter(t *testing.T) {
	s, orch := newActiveScreen(t, nil)

	s.Update(key('a'))

	if got, ok := orch.Session().Answer(0); !ok || got != "A" {
		t.Errorf("answer 0 = %q (ok=%v), want A", got, ok)
	}
}

func TestQuizScreen_SelectAnswerWithCursor(t *testing.T) {
	s, orch := newActiveScreen(t, nil)

	s.Update(key('j')) // cursor to option B
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if got, ok := orch.Session().Answer(0); !ok || got != "B" {
		t.Errorf("answer 0 = %q (ok=%v), want B", got, ok)
	}
}

func TestQuizScreen_NavigateQuestions(t *testing.T) {
	s, _ := newActiveScreen(t, nil)

	s.Update(key('n'))
	if s.question != 1 {
		t.Errorf("question = %d after next, want 1", s.question)
	}
	s.Update(key('n'))
	if s.question != 1 {
		t.Errorf("question = %d at the end, want 1 (no wrap)", s.question)
	}
	s.Update(key('p'))
	if s.question != 0 {
		t.Errorf("question = %d after prev, want 0", s.question)
	}
}

func TestQuizScreen_SubmitIncompleteRejected(t *testing.T) {
	repo := &mockEventRepo{}
	s, orch := newActiveScreen(t, repo)

	s.Update(key('a'))
	_, cmd := s.Update(key('s'))

	if cmd != nil {
		t.Error("expected no persist command for an incomplete session")
	}
	if orch.Session().Revealed() {
		t.Error("incomplete session must not reveal")
	}
}

func TestQuizScreen_SubmitPersistsResult(t *testing.T) {
	repo := &mockEventRepo{}
	s, orch := newActiveScreen(t, repo)

	s.Update(key('a')) // Q1: correct
	s.Update(key('n'))
	s.Update(key('c')) // Q2: wrong
	_, cmd := s.Update(key('s'))

	if !orch.Session().Revealed() {
		t.Fatal("expected session to be revealed after submit")
	}
	if cmd == nil {
		t.Fatal("expected a persist command after submit")
	}
	cmd()

	if len(repo.quizResults) != 1 {
		t.Fatalf("persisted results = %d, want 1", len(repo.quizResults))
	}
	got := repo.quizResults[0]
	if got.QuestionCount != 2 || got.CorrectCount != 1 {
		t.Errorf("persisted %d/%d, want 1/2 correct", got.CorrectCount, got.QuestionCount)
	}
	if got.SessionID == "" {
		t.Error("expected a session ID on the persisted result")
	}
}

func TestQuizScreen_RevealLocksSelection(t *testing.T) {
	s, orch := newActiveScreen(t, nil)

	s.Update(key('a'))
	s.Update(key('n'))
	s.Update(key('b'))
	s.Update(key('s'))

	s.Update(key('p'))
	s.Update(key('c')) // must be ignored after reveal

	if got, _ := orch.Session().Answer(0); got != "A" {
		t.Errorf("answer 0 = %q after reveal, want A unchanged", got)
	}
}

func TestQuizScreen_DiscardReturnsToSetup(t *testing.T) {
	s, orch := newActiveScreen(t, nil)

	s.Update(key('a'))
	s.Update(key('x'))

	if orch.Session() != nil {
		t.Error("expected no session after discard")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected setup view after discard")
	}
}

func TestQuizScreen_NewSessionResetsCursors(t *testing.T) {
	client := api.NewMockClient(
		api.MockResult{Quiz: &api.QuizResponse{Questions: testQuestions()}},
		api.MockResult{Quiz: &api.QuizResponse{Questions: testQuestions()}},
	)
	orch := orchestrator.New(client)
	orch.Apply(orch.GenerateQuiz("notes", 2)())
	s := New(orch, nil)

	s.Update(key('n'))
	s.Update(key('j'))

	// A fresh generation replaces the session slot.
	orch.Apply(orch.GenerateQuiz("more notes", 2)())

	s.syncSession()
	if s.question != 0 || s.cursor != 0 {
		t.Errorf("cursors = (%d,%d) after new session, want (0,0)", s.question, s.cursor)
	}
}
