package api

import (
	"context"
	"sync"
)

// MockResult is one canned backend result for the MockClient. Exactly
// one payload field should be set for the operation it answers.
type MockResult struct {
	Summary     *SummarizeResponse
	Translation *TranslateResponse
	Quiz        *QuizResponse
	History     []HistoryEntry
	Err         error
}

// MockCall records one operation invocation for assertions.
type MockCall struct {
	Op   string // "summarize", "translate", "quiz", "history"
	Text string
}

// MockClient is a deterministic Client for tests. It returns canned
// results in FIFO order and records every call.
type MockClient struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []MockCall
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a MockClient with the given canned results.
func NewMockClient(results ...MockResult) *MockClient {
	return &MockClient{results: results}
}

// AddResult appends a canned result to the queue.
func (m *MockClient) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// CallCount returns the number of operations invoked so far.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockClient) next(call MockCall) (MockResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, call)

	if len(m.results) == 0 {
		return MockResult{}, &ErrUnreachable{}
	}
	r := m.results[0]
	m.results = m.results[1:]
	if r.Err != nil {
		return MockResult{}, r.Err
	}
	return r, nil
}

func (m *MockClient) Summarize(_ context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	r, err := m.next(MockCall{Op: "summarize", Text: req.Text})
	if err != nil {
		return nil, err
	}
	return r.Summary, nil
}

func (m *MockClient) Translate(_ context.Context, req TranslateRequest) (*TranslateResponse, error) {
	r, err := m.next(MockCall{Op: "translate", Text: req.Text})
	if err != nil {
		return nil, err
	}
	return r.Translation, nil
}

func (m *MockClient) GenerateQuiz(_ context.Context, req QuizRequest) (*QuizResponse, error) {
	r, err := m.next(MockCall{Op: "quiz", Text: req.Text})
	if err != nil {
		return nil, err
	}
	return r.Quiz, nil
}

func (m *MockClient) History(_ context.Context) ([]HistoryEntry, error) {
	r, err := m.next(MockCall{Op: "history"})
	if err != nil {
		return nil, err
	}
	return r.History, nil
}
