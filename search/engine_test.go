package search

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
)

type stubTranslator struct {
	results []SearchResult
	err     error
}

func (s *stubTranslator) FetchResults(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	return s.results, s.err
}

func TestSearch_LivePath(t *testing.T) {
	live := []SearchResult{
		{Title: "Go", Snippet: "a language", URL: "https://en.wikipedia.org/wiki/Go"},
		{Title: "Gopher", Snippet: "a rodent", URL: "https://en.wikipedia.org/wiki/Gopher"},
	}
	engine := NewEngine(&stubTranslator{results: live}, 7, zap.NewNop())

	resp := engine.Search(context.Background(), "go")

	if resp.Query != "go" {
		t.Errorf("unexpected query: %q", resp.Query)
	}
	if resp.Engine != EngineName {
		t.Errorf("unexpected engine: %q", resp.Engine)
	}
	if resp.ElapsedMS < 0 {
		t.Errorf("elapsed must be non-negative, got %d", resp.ElapsedMS)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	for i, want := range live {
		if resp.Results[i] != want {
			t.Errorf("result %d: expected %+v, got %+v", i, want, resp.Results[i])
		}
	}
}

func TestSearch_EmptyLiveResultsIsNotFallback(t *testing.T) {
	engine := NewEngine(&stubTranslator{results: nil}, 7, zap.NewNop())

	resp := engine.Search(context.Background(), "noresults")

	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results, got %d", len(resp.Results))
	}
}

func TestSearch_FallbackDeterminism(t *testing.T) {
	engine := NewEngine(&stubTranslator{err: fmt.Errorf("%w: upstream down", ErrTranslator)}, 7, zap.NewNop())

	resp := engine.Search(context.Background(), "rust")

	if len(resp.Results) != 2 {
		t.Fatalf("expected exactly 2 fallback results, got %d", len(resp.Results))
	}

	first := resp.Results[0]
	if first.Title != "Search Wikipedia for: rust" {
		t.Errorf("unexpected first title: %q", first.Title)
	}
	if first.URL != "https://en.wikipedia.org/w/index.php?search=rust" {
		t.Errorf("unexpected first URL: %q", first.URL)
	}
	if first.Snippet == "" {
		t.Error("first fallback snippet must not be empty")
	}

	second := resp.Results[1]
	if second.Title != "Search DuckDuckGo for: rust" {
		t.Errorf("unexpected second title: %q", second.Title)
	}
	if second.URL != "https://duckduckgo.com/?q=rust" {
		t.Errorf("unexpected second URL: %q", second.URL)
	}
	if second.Snippet == "" {
		t.Error("second fallback snippet must not be empty")
	}
}

func TestSearch_FallbackEncodesQuery(t *testing.T) {
	engine := NewEngine(&stubTranslator{err: ErrTranslator}, 7, zap.NewNop())

	resp := engine.Search(context.Background(), "hello world & more")

	if want := "https://en.wikipedia.org/w/index.php?search=hello%20world%20%26%20more"; resp.Results[0].URL != want {
		t.Errorf("expected %q, got %q", want, resp.Results[0].URL)
	}
	if want := "https://duckduckgo.com/?q=hello%20world%20%26%20more"; resp.Results[1].URL != want {
		t.Errorf("expected %q, got %q", want, resp.Results[1].URL)
	}
}
