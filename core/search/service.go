// ABOUTME: Search service runs the broad video search used when the trusted feed has no match
// ABOUTME: Provider failures are logged and degrade to an empty result, never an error

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

const (
	// DefaultFetchLimit is how many raw results are requested from the provider
	DefaultFetchLimit = 30

	// DefaultCacheTTL keeps raw results together with the instant they were fetched
	DefaultCacheTTL = 15 * time.Minute

	// MaxQueryLength bounds a search query in bytes
	MaxQueryLength = 100
)

// cachedSearch stores raw results with the instant their relative times refer to
type cachedSearch struct {
	SearchedAt time.Time      `json:"searchedAt"`
	Videos     []domain.Video `json:"videos"`
}

// SearchService handles highlight search operations
type SearchService struct {
	deps       interfaces.Dependencies
	provider   interfaces.VideoSearchProvider
	ranker     *Ranker
	fetchLimit int
	cacheTTL   time.Duration
}

// NewSearchService creates a new search service instance
func NewSearchService(deps interfaces.Dependencies, provider interfaces.VideoSearchProvider, ranker *Ranker) *SearchService {
	return &SearchService{
		deps:       deps,
		provider:   provider,
		ranker:     ranker,
		fetchLimit: DefaultFetchLimit,
		cacheTTL:   DefaultCacheTTL,
	}
}

// SetCacheTTL overrides how long raw results are cached
func (s *SearchService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

// validateQuery validates search query parameters
func (s *SearchService) validateQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("search query cannot be empty")
	}

	if len(query) < 2 {
		return errors.New("search query must be at least 2 characters")
	}

	if len(query) > MaxQueryLength {
		return fmt.Errorf("search query cannot exceed %d characters", MaxQueryLength)
	}

	return nil
}

// SearchHighlights queries the provider and ranks the results for the fixture.
// Every failure is logged and yields an empty slice.
func (s *SearchService) SearchHighlights(ctx context.Context, query string, fixture domain.Fixture) []domain.Video {
	logger := s.deps.Log()

	if err := s.validateQuery(query); err != nil {
		logger.Warn("Rejected search query", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Video{}
	}

	result, err := s.search(ctx, query)
	if err != nil {
		logger.Error("Search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return []domain.Video{}
	}

	ranked := s.ranker.Rank(fixture, result.Videos, result.SearchedAt)
	logger.Debug("Ranked search results", map[string]interface{}{
		"query":    query,
		"fixture":  fixture.ID,
		"raw":      len(result.Videos),
		"accepted": len(ranked),
	})
	return ranked
}

func (s *SearchService) search(ctx context.Context, query string) (*cachedSearch, error) {
	cacheKey := fmt.Sprintf("search:highlights:%s", strings.ToLower(strings.TrimSpace(query)))

	// Check cache first
	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, cacheKey)
		if err == nil && data != nil {
			var cached cachedSearch
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	if s.provider == nil {
		return nil, errors.New("search provider not configured")
	}

	searchedAt := s.deps.Clock()
	videos, err := s.provider.Search(ctx, query, s.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	result := &cachedSearch{SearchedAt: searchedAt, Videos: videos}

	if s.deps.Cache != nil && len(videos) > 0 {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}

	return result, nil
}

// Query builds the search query for a fixture
func Query(club domain.ClubProfile, fixture domain.Fixture) string {
	return fmt.Sprintf("%s vs %s highlight", club.ShortName, fixture.Opponent)
}
