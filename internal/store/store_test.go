package store

import (
	"context"
	"testing"
)

func openTestRepo(t *testing.T) EventRepo {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestPragmasApplied(t *testing.T) {
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryRequests(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	events := []RequestEventData{
		{Kind: KindSummarize, Success: true, HTTPStatus: 200, LatencyMs: 120, CharsIn: 400, SizeOut: 80},
		{Kind: KindTranslate, Success: false, HTTPStatus: 503, LatencyMs: 40, ErrorMessage: "model not loaded"},
		{Kind: KindSummarize, Success: true, HTTPStatus: 200, LatencyMs: 80, CharsIn: 200, SizeOut: 50},
	}
	for _, e := range events {
		if err := repo.AppendRequest(ctx, e); err != nil {
			t.Fatalf("append request: %v", err)
		}
	}

	all, err := repo.QueryRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query requests: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	// Newest first.
	if all[0].Kind != KindSummarize || all[0].LatencyMs != 80 {
		t.Errorf("first record = %+v, want the latest summarize event", all[0])
	}
	if all[0].Sequence <= all[1].Sequence || all[1].Sequence <= all[2].Sequence {
		t.Error("sequences must be strictly decreasing in newest-first order")
	}

	summaries, err := repo.QueryRequests(ctx, QueryOpts{Kind: KindSummarize})
	if err != nil {
		t.Fatalf("query by kind: %v", err)
	}
	if len(summaries) != 2 {
		t.Errorf("got %d summarize records, want 2", len(summaries))
	}

	limited, err := repo.QueryRequests(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d records with Limit 1, want 1", len(limited))
	}
}

func TestRequestUsage(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for _, e := range []RequestEventData{
		{Kind: KindQuiz, Success: true, LatencyMs: 100},
		{Kind: KindQuiz, Success: false, LatencyMs: 300, ErrorMessage: "boom"},
		{Kind: KindHistory, Success: true, LatencyMs: 20},
	} {
		if err := repo.AppendRequest(ctx, e); err != nil {
			t.Fatalf("append request: %v", err)
		}
	}

	usage, err := repo.RequestUsage(ctx)
	if err != nil {
		t.Fatalf("request usage: %v", err)
	}

	byKind := make(map[string]RequestUsage)
	for _, u := range usage {
		byKind[u.Kind] = u
	}

	q := byKind[KindQuiz]
	if q.Calls != 2 || q.Failures != 1 {
		t.Errorf("quiz usage = %+v, want 2 calls / 1 failure", q)
	}
	if q.AvgLatencyMs != 200 {
		t.Errorf("quiz avg latency = %d, want 200", q.AvgLatencyMs)
	}
	if h := byKind[KindHistory]; h.Calls != 1 || h.Failures != 0 {
		t.Errorf("history usage = %+v, want 1 call / 0 failures", h)
	}
}

func TestAppendAndQueryQuizResults(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for _, d := range []QuizResultEventData{
		{SessionID: "s1", QuestionCount: 5, CorrectCount: 3},
		{SessionID: "s2", QuestionCount: 3, CorrectCount: 3},
	} {
		if err := repo.AppendQuizResult(ctx, d); err != nil {
			t.Fatalf("append quiz result: %v", err)
		}
	}

	results, err := repo.QueryQuizResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query quiz results: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].SessionID != "s2" {
		t.Errorf("first result = %q, want newest session s2", results[0].SessionID)
	}
}
