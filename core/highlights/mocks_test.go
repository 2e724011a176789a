package highlights

import (
	"context"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
)

// mockFixtures is a mock FixtureReader backed by a slice
type mockFixtures struct {
	fixtures []domain.Fixture
	listErr  error
}

func (m *mockFixtures) Get(ctx context.Context, id string) (*domain.Fixture, error) {
	for i := range m.fixtures {
		if m.fixtures[i].ID == id {
			f := m.fixtures[i]
			return &f, nil
		}
	}
	return nil, &coreerrors.NotFoundError{Resource: "fixture", ID: id}
}

func (m *mockFixtures) List(ctx context.Context) ([]domain.Fixture, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.fixtures, nil
}

// mockFeed is a mock ChannelFeed
type mockFeed struct {
	videos []domain.Video
	calls  int
}

func (m *mockFeed) FetchChannelVideos(ctx context.Context) []domain.Video {
	m.calls++
	return m.videos
}

// mockSearcher is a mock HighlightSearcher
type mockSearcher struct {
	searchFunc func(ctx context.Context, query string, fixture domain.Fixture) []domain.Video
	queries    []string
}

func (m *mockSearcher) SearchHighlights(ctx context.Context, query string, fixture domain.Fixture) []domain.Video {
	m.queries = append(m.queries, query)
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query, fixture)
	}
	return []domain.Video{}
}
