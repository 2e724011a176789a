// ABOUTME: YouTube search client scrapes the public results page for video renderers
// ABOUTME: The page embeds its results as ytInitialData JSON inside a script tag

package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

const (
	// DefaultBaseURL is the public results endpoint
	DefaultBaseURL = "https://www.youtube.com/results"

	// sortByViews is the results filter that orders by view count
	sortByViews = "CAM%3D"

	initialDataMarker = "ytInitialData"

	apiName = "youtube-search"
)

// SearchClient implements VideoSearchProvider against the YouTube results page
type SearchClient struct {
	client  interfaces.HTTPClient
	baseURL string
}

// NewSearchClient creates a search client. An empty baseURL uses DefaultBaseURL.
func NewSearchClient(client interfaces.HTTPClient, baseURL string) *SearchClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SearchClient{
		client:  client,
		baseURL: baseURL,
	}
}

// SearchURL builds the results page URL for a query
func (c *SearchClient) SearchURL(query string) string {
	return fmt.Sprintf("%s?search_query=%s&sp=%s", c.baseURL, url.QueryEscape(query), sortByViews)
}

// Search fetches the results page and returns at most limit videos in page order
func (c *SearchClient) Search(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	if c.client == nil {
		return nil, &coreerrors.ExternalAPIError{API: apiName, Message: "HTTP client not configured"}
	}

	resp, err := c.client.Get(ctx, c.SearchURL(query))
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: apiName, Message: "request failed", Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status",
		}
	}

	videos, err := ParseResultsPage(resp.Body())
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: apiName, Message: "unreadable results page", Err: err}
	}

	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

// ParseResultsPage extracts every video renderer from a results page
func ParseResultsPage(r io.Reader) ([]domain.Video, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var payload string
	doc.Find("script").EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, initialDataMarker) {
			return true
		}
		payload = extractJSON(text)
		return payload == ""
	})
	if payload == "" {
		return nil, fmt.Errorf("%s not found", initialDataMarker)
	}

	var data initialData
	if err := sonic.UnmarshalString(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", initialDataMarker, err)
	}

	return data.videos(), nil
}

// extractJSON returns the object assigned to ytInitialData in a script body
func extractJSON(script string) string {
	idx := strings.Index(script, initialDataMarker)
	if idx < 0 {
		return ""
	}
	rest := script[idx+len(initialDataMarker):]

	start := strings.Index(rest, "{")
	if start < 0 {
		return ""
	}
	rest = rest[start:]

	depth := 0
	inString := false
	escaped := false
	for i, ch := range rest {
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return rest[:i+1]
			}
		}
	}
	return ""
}

// ParseViewCount reads "1,234,567 views" style text. Unreadable text is 0.
func ParseViewCount(text string) int64 {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
