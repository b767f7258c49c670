package store

import (
	"context"
	"fmt"

	"github.com/abhisek/smartlearn/ent"
	"github.com/abhisek/smartlearn/ent/quizresultevent"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error) {
	q := r.client.QuizResultEvent.Query().
		Order(ent.Desc(quizresultevent.FieldSequence))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}

	records := make([]QuizResultRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, QuizResultRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			QuizResultEventData: QuizResultEventData{
				SessionID:     row.SessionID,
				QuestionCount: row.QuestionCount,
				CorrectCount:  row.CorrectCount,
			},
		})
	}
	return records, nil
}
