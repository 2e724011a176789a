// ABOUTME: Service interfaces for the external collaborators of the matching core
// ABOUTME: Collaborators hand plain domain records to the core and never raise into it

package interfaces

import (
	"context"

	"highlights-app-api/core/domain"
)

// FixtureSource produces the current fixture list from calendar feeds.
// Implementations degrade to an empty slice when every source fails.
type FixtureSource interface {
	FetchFixtures(ctx context.Context) []domain.Fixture
}

// ChannelFeed returns the trusted channel's latest videos in feed order
type ChannelFeed interface {
	FetchChannelVideos(ctx context.Context) []domain.Video
}

// VideoSearchProvider runs a broad public search and returns raw results
type VideoSearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Video, error)
}

// HighlightSearcher runs the search fallback for a fixture
type HighlightSearcher interface {
	SearchHighlights(ctx context.Context, query string, fixture domain.Fixture) []domain.Video
}
