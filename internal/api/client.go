package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/smartlearn/internal/quiz"
)

// Operation parameter bounds, mirroring the backend's validation.
const (
	DefaultMaxLength = 150
	DefaultMinLength = 40

	MinQuestions     = 1
	MaxQuestions     = 10
	DefaultQuestions = 5
)

// Client is the boundary to the SmartLearn backend. All four
// operations are blocking; callers run them off the UI loop and feed
// the results back as messages.
type Client interface {
	// Summarize condenses text into a short summary.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// Translate translates English text into one of the supported
	// target languages.
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error)

	// GenerateQuiz produces a multiple-choice quiz from the text. The
	// response is schema-validated and structurally checked before it
	// is returned.
	GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error)

	// History returns the backend's saved request history, newest first.
	History(ctx context.Context) ([]HistoryEntry, error)
}

// SummarizeRequest asks the backend for a summary of Text.
type SummarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

// SummarizeResponse is the backend's summary payload.
type SummarizeResponse struct {
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

// TranslateRequest asks for a translation of Text into TargetLang.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslateResponse is the backend's translation payload.
type TranslateResponse struct {
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// QuizRequest asks for NumQuestions multiple-choice questions on Text.
type QuizRequest struct {
	Text         string `json:"text"`
	NumQuestions int    `json:"num_questions"`
}

// QuizResponse is the backend's generated quiz payload.
type QuizResponse struct {
	Questions  []quiz.Question `json:"questions"`
	SourceText string          `json:"source_text"`
}

// HistoryEntry is one saved request. It is owned by the backend and
// read-only here. ContentType is one of "summary", "translation",
// "quiz".
type HistoryEntry struct {
	ID           string          `json:"id"`
	ContentType  string          `json:"content_type"`
	OriginalText string          `json:"original_text"`
	Result       json.RawMessage `json:"result"`
	Timestamp    time.Time       `json:"timestamp"`
}

// HTTPClient implements Client over the backend's JSON/HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// New creates an HTTPClient from cfg.
func New(cfg Config) (*HTTPClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *HTTPClient) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	if req.MaxLength == 0 {
		req.MaxLength = DefaultMaxLength
	}
	if req.MinLength == 0 {
		req.MinLength = DefaultMinLength
	}

	var resp SummarizeResponse
	if err := c.post(ctx, "/api/summarize", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if req.SourceLang == "" {
		req.SourceLang = SourceLang
	}
	if _, ok := LookupTarget(req.TargetLang); !ok {
		return nil, fmt.Errorf("unsupported target language %q", req.TargetLang)
	}

	var resp TranslateResponse
	if err := c.post(ctx, "/api/translate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error) {
	if req.NumQuestions < MinQuestions || req.NumQuestions > MaxQuestions {
		return nil, fmt.Errorf("num_questions %d outside [%d, %d]", req.NumQuestions, MinQuestions, MaxQuestions)
	}

	body, err := c.do(ctx, http.MethodPost, "/api/quiz", req)
	if err != nil {
		return nil, err
	}

	// Validate the payload shape before trusting it with a session.
	if err := validateQuizPayload(body); err != nil {
		return nil, err
	}

	var resp QuizResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ErrInvalidResponse{Body: body, Err: err}
	}
	if err := quiz.CheckQuestions(resp.Questions); err != nil {
		return nil, &ErrInvalidResponse{Body: body, Err: err}
	}
	return &resp, nil
}

func (c *HTTPClient) History(ctx context.Context) ([]HistoryEntry, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/history", nil)
	if err != nil {
		return nil, err
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, &ErrInvalidResponse{Body: body, Err: err}
	}
	return entries, nil
}

// post issues a JSON POST and decodes the 2xx body into out.
func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, in)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ErrInvalidResponse{Body: body, Err: err}
	}
	return nil
}

// do performs one request and maps failures onto the error taxonomy:
// connection problems become ErrUnreachable, non-2xx statuses become
// ErrBackend with the FastAPI detail string when present.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any) (json.RawMessage, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &ErrUnreachable{Err: err}
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ErrUnreachable{Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, &ErrBackend{
			Status: httpResp.StatusCode,
			Detail: errorDetail(body),
		}
	}

	return body, nil
}

// errorDetail extracts the "detail" field from a FastAPI error body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
