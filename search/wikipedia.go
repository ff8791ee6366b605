package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	wikipediaAPIURL  = "https://en.wikipedia.org/w/api.php"
	wikipediaBaseURL = "https://en.wikipedia.org/wiki/"
	userAgent        = "Happysearch/1.0 (+https://localhost)"

	// DefaultResultLimit is the number of hits requested from the
	// upstream API when the caller does not say otherwise.
	DefaultResultLimit = 7
)

// ErrTranslator is the single failure signal the translator exposes.
// Callers do not get to distinguish a timeout from a bad payload.
var ErrTranslator = errors.New("live search failed")

type WikipediaClient struct {
	client *http.Client

	// baseURL overrides the real API endpoint; empty in production.
	baseURL string
}

type wikipediaResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

func NewWikipediaClient(timeout time.Duration) *WikipediaClient {
	return &WikipediaClient{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchResults queries the Wikipedia full-text search API and returns the
// hits in the order the API gave them. A successful response with zero hits
// yields an empty slice and a nil error.
func (c *WikipediaClient) FetchResults(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("utf8", "")
	params.Set("format", "json")

	apiURL := c.endpoint() + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrTranslator, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTranslator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream status %d", ErrTranslator, resp.StatusCode)
	}

	var payload wikipediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTranslator, err)
	}

	results := make([]SearchResult, 0, len(payload.Query.Search))
	for _, hit := range payload.Query.Search {
		title := hit.Title
		if title == "" {
			title = "Untitled"
		}
		results = append(results, SearchResult{
			Title:   title,
			Snippet: stripHighlightMarkup(hit.Snippet),
			URL:     wikipediaBaseURL + percentEncode(strings.ReplaceAll(title, " ", "_")),
		})
	}
	return results, nil
}

func (c *WikipediaClient) endpoint() string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return wikipediaAPIURL
}

// stripHighlightMarkup removes the API's literal highlight wrappers. This is
// an exact substring match, not HTML stripping.
func stripHighlightMarkup(snippet string) string {
	snippet = strings.ReplaceAll(snippet, `<span class="searchmatch">`, "")
	return strings.ReplaceAll(snippet, "</span>", "")
}

// percentEncode escapes s for use in a URL, keeping "/" literal and
// encoding spaces as %20.
func percentEncode(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	return strings.ReplaceAll(e, "%2F", "/")
}
