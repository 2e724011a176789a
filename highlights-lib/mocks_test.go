package highlightslib

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

// fakeHTTPClient serves canned bodies by URL and fails for anything else
type fakeHTTPClient struct {
	mu     sync.Mutex
	bodies map[string]string
	calls  []string
}

func (f *fakeHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, url)

	body, ok := f.bodies[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &fakeResponse{body: body}, nil
}

type fakeResponse struct {
	body string
}

func (r *fakeResponse) StatusCode() int          { return 200 }
func (r *fakeResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r *fakeResponse) Header(key string) string { return "" }

// mockSearchProvider returns canned search results
type mockSearchProvider struct {
	searchFunc func(ctx context.Context, query string, limit int) ([]domain.Video, error)
}

func (m *mockSearchProvider) Search(ctx context.Context, query string, limit int) ([]domain.Video, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, limit)
	}
	return nil, nil
}
