package quiz

import "testing"

func validQuestion() Question {
	return Question{
		Prompt:        "What is the powerhouse of the cell?",
		Options:       []string{"A. Mitochondria", "B. Nucleus", "C. Golgi body", "D. Vacuole"},
		CorrectAnswer: "A",
		Explanation:   "Mitochondria produce ATP.",
	}
}

func TestCheckQuestions_Valid(t *testing.T) {
	if err := CheckQuestions([]Question{validQuestion()}); err != nil {
		t.Errorf("CheckQuestions on a valid quiz: %v", err)
	}
}

func TestCheckQuestions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty prompt", func(q *Question) { q.Prompt = "   " }},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }},
		{"five options", func(q *Question) { q.Options = append(q.Options, "E. Extra") }},
		{"correct answer not a label", func(q *Question) { q.CorrectAnswer = "Mitochondria" }},
		{"lowercase label", func(q *Question) { q.CorrectAnswer = "a" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			if err := CheckQuestions([]Question{q}); err == nil {
				t.Error("expected structural error, got nil")
			}
		})
	}
}

func TestCheckQuestions_Empty(t *testing.T) {
	if err := CheckQuestions(nil); err == nil {
		t.Error("expected error for empty quiz")
	}
}

func TestOptionText_StripsLabelPrefix(t *testing.T) {
	q := Question{Options: []string{"A. Mitochondria", "B) Nucleus", "C: Golgi body", "Vacuole"}}

	tests := []struct {
		i    int
		want string
	}{
		{0, "Mitochondria"},
		{1, "Nucleus"},
		{2, "Golgi body"},
		{3, "Vacuole"}, // no prefix: returned as-is
	}
	for _, tt := range tests {
		if got := q.OptionText(tt.i); got != tt.want {
			t.Errorf("OptionText(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}

	if got := q.OptionText(9); got != "" {
		t.Errorf("OptionText out of range = %q, want empty", got)
	}
}

func TestLabelHelpers(t *testing.T) {
	for i, want := range []string{"A", "B", "C", "D"} {
		if got := LabelAt(i); got != want {
			t.Errorf("LabelAt(%d) = %q, want %q", i, got, want)
		}
		if !ValidLabel(want) {
			t.Errorf("ValidLabel(%q) = false", want)
		}
	}
	if LabelAt(4) != "" || LabelAt(-1) != "" {
		t.Error("LabelAt out of range must return empty")
	}
	if ValidLabel("E") || ValidLabel("") {
		t.Error("ValidLabel accepted a non-label")
	}
}
