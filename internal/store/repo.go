package store

import (
	"context"
	"time"
)

// Operation kind labels used in RequestEvent records.
const (
	KindSummarize = "summarize"
	KindTranslate = "translate"
	KindQuiz      = "quiz"
	KindHistory   = "history"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Kind  string // filter by operation kind ("" = all)
}

// RequestEventData is the payload for one backend API call record.
type RequestEventData struct {
	Kind         string
	Success      bool
	HTTPStatus   int
	LatencyMs    int64
	CharsIn      int
	SizeOut      int
	ErrorMessage string
}

// RequestEventRecord is a stored request event.
type RequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RequestEventData
}

// RequestUsage aggregates request events per operation kind.
type RequestUsage struct {
	Kind         string
	Calls        int
	Failures     int
	AvgLatencyMs int64
}

// QuizResultEventData is the payload for one submitted quiz session.
type QuizResultEventData struct {
	SessionID     string
	QuestionCount int
	CorrectCount  int
}

// QuizResultRecord is a stored quiz result.
type QuizResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizResultEventData
}

// EventRepo provides append and query access to the activity log.
type EventRepo interface {
	// AppendRequest records one backend API call.
	AppendRequest(ctx context.Context, data RequestEventData) error

	// QueryRequests returns request events, newest first.
	QueryRequests(ctx context.Context, opts QueryOpts) ([]RequestEventRecord, error)

	// RequestUsage aggregates calls, failures, and latency per kind.
	RequestUsage(ctx context.Context) ([]RequestUsage, error)

	// AppendQuizResult records one revealed quiz session.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// QueryQuizResults returns quiz results, newest first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultRecord, error)
}
