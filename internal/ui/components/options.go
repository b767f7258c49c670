package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartlearn/internal/quiz"
	"github.com/abhisek/smartlearn/internal/ui/theme"
)

// OptionList renders the four option rows of one quiz question. The
// visual state of each row is driven entirely by the session: selected
// options highlight before reveal, correct/wrong/dimmed after.
type OptionList struct {
	Session  *quiz.Session
	Index    int // question index within the session
	Cursor   int // option row under the keyboard cursor, -1 for none
	ShowHint bool
}

// View renders all options of the question.
func (o OptionList) View() string {
	if o.Session == nil {
		return ""
	}
	q := o.Session.Questions[o.Index]

	var s string
	for i := 0; i < quiz.OptionCount && i < len(q.Options); i++ {
		label := quiz.LabelAt(i)

		prefix := "  "
		if i == o.Cursor && !o.Session.Revealed() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, q.OptionText(i))

		switch o.Session.OptionOutcome(o.Index, label) {
		case quiz.OutcomeSelected:
			s += theme.Selected.Render(line)
		case quiz.OutcomeCorrect:
			s += theme.Correct.Render(line)
		case quiz.OutcomeWrong:
			s += theme.Incorrect.Render(line)
		case quiz.OutcomeDimmed:
			s += theme.Dimmed.Render(line)
		default:
			if i == o.Cursor && !o.Session.Revealed() {
				s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)
			} else {
				s += theme.Unselected.Render(line)
			}
		}
		s += "\n"
	}

	if o.ShowHint && o.Session.Revealed() && q.Explanation != "" {
		s += "\n" + theme.Hint.Render("  "+q.Explanation) + "\n"
	}

	return s
}
