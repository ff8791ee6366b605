package search

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Engine wraps a Translator with timing and fallback policy. Search never
// fails: when the live source is down the response carries two static
// search links instead.
type Engine struct {
	translator Translator
	limit      int
	logger     *zap.Logger
}

func NewEngine(translator Translator, limit int, logger *zap.Logger) *Engine {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &Engine{
		translator: translator,
		limit:      limit,
		logger:     logger,
	}
}

// Search runs the query against the live source and assembles the response.
// The query must already be trimmed and non-empty.
func (e *Engine) Search(ctx context.Context, query string) *Response {
	started := time.Now()

	results, err := e.translator.FetchResults(ctx, query, e.limit)
	if err != nil {
		e.logger.Warn("live search failed, serving fallback links",
			zap.String("query", query),
			zap.Error(err),
		)
		results = fallbackResults(query)
	}
	if results == nil {
		// results must serialize as an array, never null.
		results = []SearchResult{}
	}

	return &Response{
		Query:     query,
		Engine:    EngineName,
		ElapsedMS: time.Since(started).Milliseconds(),
		Results:   results,
	}
}

// fallbackResults builds the two static links substituted for live results.
// The order is fixed: Wikipedia first, DuckDuckGo second.
func fallbackResults(query string) []SearchResult {
	encoded := percentEncode(query)
	return []SearchResult{
		{
			Title:   "Search Wikipedia for: " + query,
			Snippet: "Live search source unavailable here, so use this direct Wikipedia query link.",
			URL:     "https://en.wikipedia.org/w/index.php?search=" + encoded,
		},
		{
			Title:   "Search DuckDuckGo for: " + query,
			Snippet: "Open web results directly in DuckDuckGo.",
			URL:     "https://duckduckgo.com/?q=" + encoded,
		},
	}
}
