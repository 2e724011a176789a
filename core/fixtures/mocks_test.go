package fixtures

import (
	"context"
	"io"
	"strings"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockSource is a mock FixtureSource
type mockSource struct {
	fixtures []domain.Fixture
	calls    int
}

func (m *mockSource) FetchFixtures(ctx context.Context) []domain.Fixture {
	m.calls++
	return m.fixtures
}

// mockStorage is a mock FixtureStorage
type mockStorage struct {
	replaceAllFunc func(ctx context.Context, fixtures []domain.Fixture) error
	listFunc       func(ctx context.Context) ([]domain.Fixture, error)
	getFunc        func(ctx context.Context, id string) (*domain.Fixture, error)
}

func (m *mockStorage) ReplaceAll(ctx context.Context, fixtures []domain.Fixture) error {
	if m.replaceAllFunc != nil {
		return m.replaceAllFunc(ctx, fixtures)
	}
	return nil
}

func (m *mockStorage) List(ctx context.Context) ([]domain.Fixture, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockStorage) Get(ctx context.Context, id string) (*domain.Fixture, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}
