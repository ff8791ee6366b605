package search

import "context"

// EngineName identifies this engine in every response payload.
const EngineName = "Happysearch"

type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

type Response struct {
	Query     string         `json:"query"`
	Engine    string         `json:"engine"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Results   []SearchResult `json:"results"`
}

// Translator turns a query into normalized results from a live source.
// Implementations collapse every failure kind (network, status, timeout,
// malformed payload) into an error wrapping ErrTranslator.
type Translator interface {
	FetchResults(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
