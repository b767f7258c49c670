package quiz

import (
	"fmt"
	"strings"
)

// OptionCount is the number of answer options per question.
const OptionCount = 4

// Labels are the option labels in display order.
var Labels = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice question as generated by the
// backend. Options arrive already prefixed with their label, e.g.
// "A. The mitochondria".
type Question struct {
	// Prompt is the question text shown to the user.
	Prompt string `json:"question"`

	// Options holds exactly 4 labelled answer options in A..D order.
	Options []string `json:"options"`

	// CorrectAnswer is the bare label of the correct option ("A".."D").
	CorrectAnswer string `json:"correct_answer"`

	// Explanation is a short rationale shown after reveal.
	Explanation string `json:"explanation"`
}

// OptionText returns the option text for the given index with its
// label prefix stripped, falling back to the raw option when the
// prefix is missing.
func (q Question) OptionText(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	opt := q.Options[i]
	label := LabelAt(i)
	for _, prefix := range []string{label + ". ", label + ") ", label + ": "} {
		if strings.HasPrefix(opt, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(opt, prefix))
		}
	}
	return opt
}

// ValidLabel reports whether label is one of "A".."D".
func ValidLabel(label string) bool {
	for _, l := range Labels {
		if l == label {
			return true
		}
	}
	return false
}

// LabelAt returns the label for option index i, or "" when out of range.
func LabelAt(i int) string {
	if i < 0 || i >= len(Labels) {
		return ""
	}
	return Labels[i]
}

// CheckQuestions performs structural validation on a generated quiz
// before a session is built from it. The backend promises 4 labelled
// options per question with the correct answer among the labels; a
// malformed payload is treated as an invalid response, not shown.
func CheckQuestions(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d: empty prompt", i+1)
		}
		if len(q.Options) != OptionCount {
			return fmt.Errorf("question %d: got %d options, want %d", i+1, len(q.Options), OptionCount)
		}
		if !ValidLabel(q.CorrectAnswer) {
			return fmt.Errorf("question %d: correct answer %q is not a label A-D", i+1, q.CorrectAnswer)
		}
	}
	return nil
}
