package history

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/orchestrator"
)

func testEntries() []api.HistoryEntry {
	return []api.HistoryEntry{
		{
			ID:           "1",
			ContentType:  "summary",
			OriginalText: "notes about the water cycle",
			Result:       []byte(`{"summary":"water evaporates and condenses"}`),
			Timestamp:    time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			ContentType:  "quiz",
			OriginalText: "notes about volcanoes",
			Result:       []byte(`{"questions":[{},{},{}]}`),
			Timestamp:    time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		},
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHistoryScreen_InitFetchesOnce(t *testing.T) {
	orch := orchestrator.New(api.NewMockClient(api.MockResult{History: testEntries()}))
	s := New(orch)

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a fetch command on first open")
	}

	orch.Apply(orch.RefreshHistory()())
	if !orch.HistoryFetched() {
		t.Fatal("expected history to be fetched")
	}

	// Reopening the screen must not fetch again.
	s2 := New(orch)
	if s2.Init() != nil {
		t.Error("expected no fetch command when history is already loaded")
	}
}

func TestHistoryScreen_ListsEntries(t *testing.T) {
	orch := orchestrator.New(api.NewMockClient(api.MockResult{History: testEntries()}))
	orch.Apply(orch.RefreshHistory()())

	s := New(orch)
	view := s.View(100, 30)

	if !strings.Contains(view, "summary") || !strings.Contains(view, "quiz") {
		t.Error("expected both entry types in the view")
	}
}

func TestHistoryScreen_ExpandShowsPreview(t *testing.T) {
	orch := orchestrator.New(api.NewMockClient(api.MockResult{History: testEntries()}))
	orch.Apply(orch.RefreshHistory()())

	s := New(orch)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := s.View(100, 30)
	if !strings.Contains(view, "evaporates") {
		t.Error("expected the summary preview after expanding")
	}
}

func TestHistoryScreen_RefreshKey(t *testing.T) {
	orch := orchestrator.New(api.NewMockClient(
		api.MockResult{History: testEntries()},
		api.MockResult{History: nil},
	))
	orch.Apply(orch.RefreshHistory()())

	s := New(orch)
	_, cmd := s.Update(key('r'))
	if cmd == nil {
		t.Fatal("expected a refresh command on r")
	}
	if !orch.Busy(orchestrator.KindHistory) {
		t.Error("expected history to be busy after refresh")
	}
}

func TestResultPreview(t *testing.T) {
	entries := testEntries()

	if got := resultPreview(entries[0]); got != "water evaporates and condenses" {
		t.Errorf("summary preview = %q", got)
	}
	if got := resultPreview(entries[1]); got != "3 questions" {
		t.Errorf("quiz preview = %q", got)
	}
	if got := resultPreview(api.HistoryEntry{Result: []byte("not json")}); got != "" {
		t.Errorf("malformed preview = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short untouched", "water cycle", 40, "water cycle"},
		{"collapses whitespace", "water  \n cycle", 40, "water cycle"},
		{"ascii cut", "abcdefgh", 5, "abcd…"},
		{"multibyte cut", "круговорот воды в природе", 12, "круговорот …"},
		{"cjk cut", "水循环是地球上的重要过程", 6, "水循环是地…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}
