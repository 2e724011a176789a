// ABOUTME: Highlight service resolves a fixture to its highlight video
// ABOUTME: Tries the trusted channel feed first and falls back to a ranked open search

package highlights

import (
	"context"
	"fmt"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
	"highlights-app-api/core/matcher"
	"highlights-app-api/core/search"
	"highlights-app-api/pkg/featureflags"
)

// Source tells where a highlight result came from
type Source string

const (
	SourceFeed   Source = "feed"
	SourceSearch Source = "search"
	SourceNone   Source = "none"
)

// FixtureReader loads stored fixtures
type FixtureReader interface {
	Get(ctx context.Context, id string) (*domain.Fixture, error)
	List(ctx context.Context) ([]domain.Fixture, error)
}

// HighlightResult is the outcome of a highlight lookup.
// Video is set for feed matches; SearchResults for the search fallback.
type HighlightResult struct {
	Fixture       domain.Fixture
	Video         *domain.Video
	SearchResults []domain.Video
	Source        Source
}

// Service coordinates fixtures, the trusted feed and the search fallback
type Service struct {
	deps     interfaces.Dependencies
	club     domain.ClubProfile
	fixtures FixtureReader
	feed     interfaces.ChannelFeed
	matcher  *matcher.Matcher
	searcher interfaces.HighlightSearcher
	flags    featureflags.Manager
}

// NewService creates a highlight service. searcher and flags may be nil.
func NewService(
	deps interfaces.Dependencies,
	club domain.ClubProfile,
	fixtures FixtureReader,
	feed interfaces.ChannelFeed,
	m *matcher.Matcher,
	searcher interfaces.HighlightSearcher,
	flags featureflags.Manager,
) *Service {
	return &Service{
		deps:     deps,
		club:     club,
		fixtures: fixtures,
		feed:     feed,
		matcher:  m,
		searcher: searcher,
		flags:    flags,
	}
}

// FindHighlight returns the trusted-feed highlight for a fixture, or the
// search fallback results when the feed has none.
func (s *Service) FindHighlight(ctx context.Context, fixtureID string) (*HighlightResult, error) {
	fixture, err := s.fixtures.Get(ctx, fixtureID)
	if err != nil {
		return nil, err
	}

	result := &HighlightResult{
		Fixture:       *fixture,
		SearchResults: []domain.Video{},
		Source:        SourceNone,
	}

	if video := s.matcher.SelectBest(*fixture, s.channelVideos(ctx)); video != nil {
		result.Video = video
		result.Source = SourceFeed
		return result, nil
	}

	if !s.searchEnabled(ctx) {
		return result, nil
	}

	results := DedupByID(s.searcher.SearchHighlights(ctx, search.Query(s.club, *fixture), *fixture))
	if len(results) > 0 {
		result.SearchResults = results
		result.Source = SourceSearch
	}

	s.deps.Log().Debug("Highlight fell back to search", map[string]interface{}{
		"fixture": fixture.ID,
		"results": len(results),
	})
	return result, nil
}

// Candidates returns every trusted-feed video accepted for the fixture, best first
func (s *Service) Candidates(ctx context.Context, fixtureID string) (domain.Fixture, []domain.Video, error) {
	fixture, err := s.fixtures.Get(ctx, fixtureID)
	if err != nil {
		return domain.Fixture{}, nil, err
	}

	return *fixture, DedupByID(s.matcher.RankCandidates(*fixture, s.channelVideos(ctx))), nil
}

// Search runs the search fallback for a fixture with an optional custom query
func (s *Service) Search(ctx context.Context, fixtureID, query string) (domain.Fixture, []domain.Video, error) {
	fixture, err := s.fixtures.Get(ctx, fixtureID)
	if err != nil {
		return domain.Fixture{}, nil, err
	}

	if !s.searchEnabled(ctx) {
		return *fixture, []domain.Video{}, nil
	}
	if query == "" {
		query = search.Query(s.club, *fixture)
	}

	return *fixture, DedupByID(s.searcher.SearchHighlights(ctx, query, *fixture)), nil
}

// Latest returns the most recent fixture that has kicked off together with its
// trusted-feed highlight. It returns nil when no fixture has been played yet.
func (s *Service) Latest(ctx context.Context, now time.Time) (*HighlightResult, error) {
	stored, err := s.fixtures.List(ctx)
	if err != nil {
		return nil, err
	}

	var latest *domain.Fixture
	for i := range stored {
		f := stored[i]
		if !f.HasKickedOff(now) {
			continue
		}
		if latest == nil || f.Date.After(latest.Date) {
			latest = &f
		}
	}
	if latest == nil {
		return nil, nil
	}

	result := &HighlightResult{Fixture: *latest, SearchResults: []domain.Video{}, Source: SourceNone}
	if video := s.matcher.SelectBest(*latest, s.channelVideos(ctx)); video != nil {
		result.Video = video
		result.Source = SourceFeed
	}
	return result, nil
}

func (s *Service) channelVideos(ctx context.Context) []domain.Video {
	if s.feed == nil {
		return nil
	}
	return s.feed.FetchChannelVideos(ctx)
}

func (s *Service) searchEnabled(ctx context.Context) bool {
	return s.searcher != nil && featureflags.Enabled(ctx, s.flags, featureflags.SearchFallback)
}

// DedupByID drops repeated video ids, keeping the first occurrence
func DedupByID(videos []domain.Video) []domain.Video {
	seen := make(map[string]struct{}, len(videos))
	out := make([]domain.Video, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SpoilerSafeTitle names a highlight without giving away the result
func SpoilerSafeTitle(fixture domain.Fixture) string {
	return fmt.Sprintf("%s highlights", fixture.Title())
}
