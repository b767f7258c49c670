package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abhisek/smartlearn/internal/store"
)

// LoggingClient is a decorator that records every backend call in the
// local activity log.
type LoggingClient struct {
	inner  Client
	events store.EventRepo
}

var _ Client = (*LoggingClient)(nil)

// WithLogging wraps a Client with activity-log recording.
func WithLogging(c Client, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, events: repo}
}

func (l *LoggingClient) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	start := time.Now()
	resp, err := l.inner.Summarize(ctx, req)

	out := 0
	if resp != nil {
		out = len(resp.Summary)
	}
	l.record(ctx, store.KindSummarize, len(req.Text), out, start, err)
	return resp, err
}

func (l *LoggingClient) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	start := time.Now()
	resp, err := l.inner.Translate(ctx, req)

	out := 0
	if resp != nil {
		out = len(resp.TranslatedText)
	}
	l.record(ctx, store.KindTranslate, len(req.Text), out, start, err)
	return resp, err
}

func (l *LoggingClient) GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error) {
	start := time.Now()
	resp, err := l.inner.GenerateQuiz(ctx, req)

	out := 0
	if resp != nil {
		out = len(resp.Questions)
	}
	l.record(ctx, store.KindQuiz, len(req.Text), out, start, err)
	return resp, err
}

func (l *LoggingClient) History(ctx context.Context) ([]HistoryEntry, error) {
	start := time.Now()
	entries, err := l.inner.History(ctx)
	l.record(ctx, store.KindHistory, 0, len(entries), start, err)
	return entries, err
}

// record appends one RequestEvent. Logging failures are warned to
// stderr and never fail the request itself.
func (l *LoggingClient) record(ctx context.Context, kind string, charsIn, sizeOut int, start time.Time, callErr error) {
	data := store.RequestEventData{
		Kind:      kind,
		Success:   callErr == nil,
		LatencyMs: time.Since(start).Milliseconds(),
		CharsIn:   charsIn,
		SizeOut:   sizeOut,
	}

	if callErr == nil {
		data.HTTPStatus = http.StatusOK
	} else {
		data.ErrorMessage = callErr.Error()
		var be *ErrBackend
		if errors.As(callErr, &be) {
			data.HTTPStatus = be.Status
		}
	}

	if logErr := l.events.AppendRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log request event: %v\n", logErr)
	}
}
