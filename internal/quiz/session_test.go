package quiz

import "testing"

func testQuestions() []Question {
	return []Question{
		{
			Prompt:        "Which gas do plants absorb during photosynthesis?",
			Options:       []string{"A. Carbon dioxide", "B. Oxygen", "C. Nitrogen", "D. Hydrogen"},
			CorrectAnswer: "A",
			Explanation:   "Plants take in CO2 and release oxygen.",
		},
		{
			Prompt:        "Where does photosynthesis take place?",
			Options:       []string{"A. Mitochondria", "B. Nucleus", "C. Chloroplasts", "D. Ribosomes"},
			CorrectAnswer: "C",
			Explanation:   "Chloroplasts contain chlorophyll.",
		},
		{
			Prompt:        "What pigment captures light energy?",
			Options:       []string{"A. Melanin", "B. Chlorophyll", "C. Carotene", "D. Hemoglobin"},
			CorrectAnswer: "B",
			Explanation:   "Chlorophyll absorbs light for the reaction.",
		},
	}
}

func TestNewSession_StartsEmpty(t *testing.T) {
	s := NewSession(testQuestions())

	if s.ID == "" {
		t.Error("expected non-empty session ID")
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", s.AnsweredCount())
	}
	if s.Revealed() {
		t.Error("new session must not be revealed")
	}
	if s.State() != StateUnanswered {
		t.Errorf("State = %v, want StateUnanswered", s.State())
	}
}

func TestSelectAnswer_LastChoiceWins(t *testing.T) {
	s := NewSession(testQuestions())

	if !s.SelectAnswer(0, "B") {
		t.Fatal("first selection rejected")
	}
	if !s.SelectAnswer(0, "A") {
		t.Fatal("overwrite rejected")
	}

	label, ok := s.Answer(0)
	if !ok || label != "A" {
		t.Errorf("Answer(0) = %q, %v; want \"A\", true", label, ok)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1 (overwrite must not add)", s.AnsweredCount())
	}
}

func TestSelectAnswer_RejectsBadInput(t *testing.T) {
	s := NewSession(testQuestions())

	if s.SelectAnswer(-1, "A") {
		t.Error("accepted negative index")
	}
	if s.SelectAnswer(3, "A") {
		t.Error("accepted out-of-range index")
	}
	if s.SelectAnswer(0, "E") {
		t.Error("accepted label outside A-D")
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0 after rejected selections", s.AnsweredCount())
	}
}

func TestState_TracksAnswerCount(t *testing.T) {
	s := NewSession(testQuestions())

	s.SelectAnswer(0, "A")
	if s.State() != StatePartial {
		t.Errorf("State = %v, want StatePartial", s.State())
	}

	s.SelectAnswer(1, "C")
	s.SelectAnswer(2, "B")
	if s.State() != StateComplete {
		t.Errorf("State = %v, want StateComplete", s.State())
	}
}

func TestSubmit_RejectedWhileIncomplete(t *testing.T) {
	s := NewSession(testQuestions())
	s.SelectAnswer(0, "A")
	s.SelectAnswer(1, "C")

	if s.Submit() {
		t.Error("Submit accepted with 2 of 3 answered")
	}
	if s.Revealed() {
		t.Error("rejected Submit must not reveal")
	}
}

func TestSubmit_ScoresAndLocks(t *testing.T) {
	// Correct answers are A, C, B; the user picks A, D, B.
	s := NewSession(testQuestions())
	s.SelectAnswer(0, "A")
	s.SelectAnswer(1, "D")
	s.SelectAnswer(2, "B")

	if !s.Submit() {
		t.Fatal("Submit rejected on a fully answered session")
	}
	if got := s.Score(); got != 2 {
		t.Errorf("Score = %d, want 2", got)
	}
	if !s.Correct(0) || s.Correct(1) || !s.Correct(2) {
		t.Errorf("per-question correctness = %v/%v/%v, want true/false/true",
			s.Correct(0), s.Correct(1), s.Correct(2))
	}
	if s.State() != StateRevealed {
		t.Errorf("State = %v, want StateRevealed", s.State())
	}

	// Reveal is a one-way latch: further edits are no-ops.
	if s.SelectAnswer(1, "C") {
		t.Error("SelectAnswer accepted after reveal")
	}
	if label, _ := s.Answer(1); label != "D" {
		t.Errorf("answer changed after reveal: got %q, want \"D\"", label)
	}
	if got := s.Score(); got != 2 {
		t.Errorf("Score changed after reveal: got %d, want 2", got)
	}
}

func TestSubmit_IdempotentOnResult(t *testing.T) {
	s := NewSession(testQuestions())
	for i := range s.Questions {
		s.SelectAnswer(i, "A")
	}

	if !s.Submit() {
		t.Fatal("first Submit rejected")
	}
	first := s.Score()
	if !s.Submit() {
		t.Error("repeat Submit on a revealed session must report true")
	}
	if s.Score() != first {
		t.Errorf("Score changed on repeat Submit: %d vs %d", s.Score(), first)
	}
}

func TestScore_Bounds(t *testing.T) {
	qs := testQuestions()

	allWrong := NewSession(qs)
	allWrong.SelectAnswer(0, "D")
	allWrong.SelectAnswer(1, "A")
	allWrong.SelectAnswer(2, "D")
	allWrong.Submit()
	if got := allWrong.Score(); got != 0 {
		t.Errorf("all-wrong Score = %d, want 0", got)
	}

	allRight := NewSession(qs)
	allRight.SelectAnswer(0, "A")
	allRight.SelectAnswer(1, "C")
	allRight.SelectAnswer(2, "B")
	allRight.Submit()
	if got := allRight.Score(); got != len(qs) {
		t.Errorf("all-right Score = %d, want %d", got, len(qs))
	}
}

func TestDiscardThenNewSession_FreshState(t *testing.T) {
	old := NewSession(testQuestions())
	old.SelectAnswer(0, "A")
	old.SelectAnswer(1, "C")
	old.SelectAnswer(2, "B")
	old.Submit()

	// Discard is dropping the session; a fresh generation starts clean
	// regardless of what the prior session looked like.
	fresh := NewSession(testQuestions())
	if fresh.AnsweredCount() != 0 {
		t.Errorf("fresh AnsweredCount = %d, want 0", fresh.AnsweredCount())
	}
	if fresh.Revealed() {
		t.Error("fresh session must not be revealed")
	}
	if fresh.ID == old.ID {
		t.Error("fresh session must get a new ID")
	}
}

func TestOptionOutcome_BeforeReveal(t *testing.T) {
	s := NewSession(testQuestions())
	s.SelectAnswer(0, "B")

	if got := s.OptionOutcome(0, "B"); got != OutcomeSelected {
		t.Errorf("selected option outcome = %v, want OutcomeSelected", got)
	}
	if got := s.OptionOutcome(0, "A"); got != OutcomeNeutral {
		t.Errorf("unselected option outcome = %v, want OutcomeNeutral", got)
	}
}

func TestOptionOutcome_AfterReveal(t *testing.T) {
	s := NewSession(testQuestions())
	s.SelectAnswer(0, "B") // correct is A
	s.SelectAnswer(1, "C")
	s.SelectAnswer(2, "B")
	s.Submit()

	tests := []struct {
		q     int
		label string
		want  OptionOutcome
	}{
		{0, "A", OutcomeCorrect},
		{0, "B", OutcomeWrong},
		{0, "C", OutcomeDimmed},
		{1, "C", OutcomeCorrect}, // selected and correct
		{2, "B", OutcomeCorrect},
	}
	for _, tt := range tests {
		if got := s.OptionOutcome(tt.q, tt.label); got != tt.want {
			t.Errorf("OptionOutcome(%d, %q) = %v, want %v", tt.q, tt.label, got, tt.want)
		}
	}
}
