package store

import (
	"context"
	"fmt"

	"github.com/abhisek/smartlearn/ent"
	"github.com/abhisek/smartlearn/ent/requestevent"
)

// eventRepo implements EventRepo backed by ent and the global
// sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendRequest(ctx context.Context, data RequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RequestEvent.Create().
		SetSequence(seqNum).
		SetKind(data.Kind).
		SetSuccess(data.Success).
		SetHTTPStatus(data.HTTPStatus).
		SetLatencyMs(data.LatencyMs).
		SetCharsIn(data.CharsIn).
		SetSizeOut(data.SizeOut).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRequests(ctx context.Context, opts QueryOpts) ([]RequestEventRecord, error) {
	q := r.client.RequestEvent.Query().
		Order(ent.Desc(requestevent.FieldSequence))

	if opts.Kind != "" {
		q = q.Where(requestevent.Kind(opts.Kind))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request events: %w", err)
	}

	records := make([]RequestEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, RequestEventRecord{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			RequestEventData: RequestEventData{
				Kind:         row.Kind,
				Success:      row.Success,
				HTTPStatus:   row.HTTPStatus,
				LatencyMs:    row.LatencyMs,
				CharsIn:      row.CharsIn,
				SizeOut:      row.SizeOut,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return records, nil
}

func (r *eventRepo) RequestUsage(ctx context.Context) ([]RequestUsage, error) {
	rows, err := r.client.RequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query request usage: %w", err)
	}

	byKind := make(map[string]*RequestUsage)
	order := []string{}
	totalLatency := make(map[string]int64)

	for _, row := range rows {
		u, ok := byKind[row.Kind]
		if !ok {
			u = &RequestUsage{Kind: row.Kind}
			byKind[row.Kind] = u
			order = append(order, row.Kind)
		}
		u.Calls++
		if !row.Success {
			u.Failures++
		}
		totalLatency[row.Kind] += row.LatencyMs
	}

	usage := make([]RequestUsage, 0, len(order))
	for _, kind := range order {
		u := byKind[kind]
		if u.Calls > 0 {
			u.AvgLatencyMs = totalLatency[kind] / int64(u.Calls)
		}
		usage = append(usage, *u)
	}
	return usage, nil
}
