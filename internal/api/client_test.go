package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestSummarize_Success(t *testing.T) {
	var got SummarizeRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/summarize", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(SummarizeResponse{
			Summary:        "Short version.",
			OriginalLength: 120,
			SummaryLength:  14,
		})
	})

	resp, err := c.Summarize(context.Background(), SummarizeRequest{Text: "long text"})
	require.NoError(t, err)

	assert.Equal(t, "Short version.", resp.Summary)
	// Unset lengths fall back to the backend defaults.
	assert.Equal(t, DefaultMaxLength, got.MaxLength)
	assert.Equal(t, DefaultMinLength, got.MinLength)
}

func TestTranslate_Success(t *testing.T) {
	var got TranslateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/translate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(TranslateResponse{
			OriginalText:   got.Text,
			TranslatedText: "Hola mundo",
			SourceLang:     got.SourceLang,
			TargetLang:     got.TargetLang,
		})
	})

	resp, err := c.Translate(context.Background(), TranslateRequest{Text: "Hello world", TargetLang: "es"})
	require.NoError(t, err)

	assert.Equal(t, "Hola mundo", resp.TranslatedText)
	assert.Equal(t, SourceLang, got.SourceLang, "source language defaults to en")
}

func TestTranslate_UnsupportedTarget(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unsupported target must not reach the backend")
	})

	_, err := c.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "xx"})
	require.Error(t, err)
}

func TestGenerateQuiz_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quiz", r.URL.Path)
		w.Write([]byte(`{
			"questions": [{
				"question": "What do plants absorb?",
				"options": ["A. CO2", "B. O2", "C. N2", "D. H2"],
				"correct_answer": "A",
				"explanation": "Photosynthesis consumes CO2."
			}],
			"source_text": "plants"
		}`))
	})

	resp, err := c.GenerateQuiz(context.Background(), QuizRequest{Text: "plants", NumQuestions: 1})
	require.NoError(t, err)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "A", resp.Questions[0].CorrectAnswer)
}

func TestGenerateQuiz_SchemaViolation(t *testing.T) {
	// Three options instead of four: rejected before a session is built.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"questions": [{
				"question": "Q?",
				"options": ["A. x", "B. y", "C. z"],
				"correct_answer": "A",
				"explanation": "e"
			}]
		}`))
	})

	_, err := c.GenerateQuiz(context.Background(), QuizRequest{Text: "t", NumQuestions: 1})
	require.Error(t, err)

	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid), "want ErrInvalidResponse, got %T", err)
}

func TestGenerateQuiz_CountOutOfRange(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("out-of-range count must not reach the backend")
	})

	for _, n := range []int{0, 11, -3} {
		_, err := c.GenerateQuiz(context.Background(), QuizRequest{Text: "t", NumQuestions: n})
		assert.Error(t, err, "num_questions=%d", n)
	}
}

func TestHistory_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/history", r.URL.Path)
		w.Write([]byte(`[
			{"id": "1", "content_type": "summary", "original_text": "abc", "result": {"summary": "s"}, "timestamp": "2025-11-20T10:00:00Z"},
			{"id": "2", "content_type": "quiz", "original_text": "def", "result": {}, "timestamp": "2025-11-19T10:00:00Z"}
		]`))
	})

	entries, err := c.History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "summary", entries[0].ContentType)
	assert.Equal(t, 2025, entries[0].Timestamp.Year())
}

func TestBackendError_CarriesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"detail": "Summarizer model not loaded"}`))
	})

	_, err := c.Summarize(context.Background(), SummarizeRequest{Text: "x"})
	require.Error(t, err)

	var be *ErrBackend
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusServiceUnavailable, be.Status)
	assert.Equal(t, "Summarizer model not loaded", be.Detail)
}

func TestTransportError_IsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c, err := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.History(context.Background())
	require.Error(t, err)

	var unreachable *ErrUnreachable
	assert.True(t, errors.As(err, &unreachable), "want ErrUnreachable, got %T", err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http ok", "http://localhost:8000", false},
		{"https ok", "https://api.example.com", false},
		{"empty", "", true},
		{"bad scheme", "ftp://host", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{BaseURL: tt.baseURL, Timeout: time.Second}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
