package quiz

import "github.com/google/uuid"

// State describes where a session is in its lifecycle. The active
// sub-states are purely a function of how many questions have answers.
type State int

const (
	StateUnanswered State = iota // no answers yet
	StatePartial                 // some but not all questions answered
	StateComplete                // every question answered, not yet submitted
	StateRevealed                // submitted; score and correctness visible
)

// OptionOutcome is the visual state of one option button, derived from
// (is this the correct label, is this the selected label, is the
// session revealed).
type OptionOutcome int

const (
	OutcomeNeutral  OptionOutcome = iota // not selected, nothing revealed
	OutcomeSelected                      // selected, nothing revealed
	OutcomeCorrect                       // revealed: this is the correct option
	OutcomeWrong                         // revealed: selected but not correct
	OutcomeDimmed                        // revealed: neither selected nor correct
)

// Session is the state machine over one generated quiz. It is created
// from a successful quiz generation, mutated locally with no further
// network calls, and discarded as a whole. The absent session (nil
// pointer) is the Empty state.
//
// The reveal flag is a one-way latch: once Submit succeeds, answers
// are locked until the session is discarded.
type Session struct {
	// ID identifies the session in the local activity log.
	ID string

	// Questions is the generated quiz, order fixed at creation.
	Questions []Question

	answers  map[int]string
	revealed bool
}

// NewSession builds a session over the given questions. The answer map
// starts empty and the session is unrevealed.
func NewSession(qs []Question) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: qs,
		answers:   make(map[int]string),
	}
}

// SelectAnswer records label as the answer for question i, overwriting
// any prior selection (last choice wins). It reports false without
// changing anything once the session is revealed, or when the index or
// label is out of range. The calling surface disables answer controls
// after reveal; the rejection here is the backstop.
func (s *Session) SelectAnswer(i int, label string) bool {
	if s.revealed {
		return false
	}
	if i < 0 || i >= len(s.Questions) || !ValidLabel(label) {
		return false
	}
	s.answers[i] = label
	return true
}

// Answer returns the selected label for question i, if any.
func (s *Session) Answer(i int) (string, bool) {
	label, ok := s.answers[i]
	return label, ok
}

// AnsweredCount returns how many questions currently have an answer.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// Complete reports whether every question has an answer.
func (s *Session) Complete() bool {
	return len(s.answers) == len(s.Questions)
}

// Revealed reports whether Submit has succeeded.
func (s *Session) Revealed() bool {
	return s.revealed
}

// State derives the lifecycle state from the answer count and the
// reveal latch.
func (s *Session) State() State {
	switch {
	case s.revealed:
		return StateRevealed
	case len(s.answers) == 0:
		return StateUnanswered
	case s.Complete():
		return StateComplete
	default:
		return StatePartial
	}
}

// Submit reveals the session. It is rejected (returns false) unless
// every question is answered. Submitting an already-revealed session
// reports true and changes nothing; the score is fixed at first
// submit because answers are locked.
func (s *Session) Submit() bool {
	if s.revealed {
		return true
	}
	if !s.Complete() {
		return false
	}
	s.revealed = true
	return true
}

// Score counts questions whose selected label matches the correct one.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.Questions {
		if s.answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Correct reports whether question i was answered correctly.
func (s *Session) Correct(i int) bool {
	if i < 0 || i >= len(s.Questions) {
		return false
	}
	return s.answers[i] == s.Questions[i].CorrectAnswer
}

// OptionOutcome computes the display state for the option with the
// given label on question i.
func (s *Session) OptionOutcome(i int, label string) OptionOutcome {
	selected := s.answers[i] == label
	if !s.revealed {
		if selected {
			return OutcomeSelected
		}
		return OutcomeNeutral
	}
	correct := i >= 0 && i < len(s.Questions) && s.Questions[i].CorrectAnswer == label
	switch {
	case correct:
		return OutcomeCorrect
	case selected:
		return OutcomeWrong
	default:
		return OutcomeDimmed
	}
}
