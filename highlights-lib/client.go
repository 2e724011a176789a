// ABOUTME: Main client for the highlights library providing fixtures and spoiler-free highlights
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package highlightslib

import (
	"context"
	"io"
	"sync"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/feed"
	"highlights-app-api/core/fixtures"
	"highlights-app-api/core/highlights"
	"highlights-app-api/core/interfaces"
	"highlights-app-api/core/matcher"
	"highlights-app-api/core/search"
	"highlights-app-api/core/workers"
	"highlights-app-api/infrastructure/storage/sqlite"
	"highlights-app-api/infrastructure/youtube"
	"highlights-app-api/pkg/config"
	"highlights-app-api/pkg/featureflags"
)

// Client is the main entry point for the highlights library
type Client struct {
	fixtures   *fixtures.Service
	highlights *highlights.Service
	worker     *workers.RefreshWorker

	// owned is closed with the client when the client opened the store itself
	owned io.Closer

	config Config

	mu     sync.Mutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	// Storage overrides the SQLite store opened at SQLitePath
	Storage    interfaces.FixtureStorage
	SQLitePath string

	Club         domain.ClubProfile
	CalendarURLs []string
	ChannelID    string
	FetchTimeout time.Duration

	Strategy       matcher.RankingStrategy
	WindowPolicy   search.WindowPolicy
	SearchLimit    int
	SearchProvider interfaces.VideoSearchProvider

	Flags featureflags.Manager

	EnableBackgroundRefresh bool
	RefreshInterval         time.Duration

	Now func() time.Time
}

// NewClient creates a new highlights client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		Cache:      cfg.Cache,
		HTTPClient: cfg.HTTPClient,
		Logger:     cfg.Logger,
		Now:        cfg.Now,
	}

	client := &Client{config: cfg}

	storage := cfg.Storage
	if storage == nil {
		store, err := sqlite.NewFixtureStore(cfg.SQLitePath)
		if err != nil {
			return nil, NewError(ErrorTypeConfiguration, "failed to open fixture store").
				WithCause(err).
				WithContext("path", cfg.SQLitePath)
		}
		storage = store
		client.owned = store
	}

	calendar := fixtures.NewCalendarService(deps, fixtures.NewParser(cfg.Club), cfg.CalendarURLs, cfg.FetchTimeout)
	client.fixtures = fixtures.NewService(deps, calendar, storage)

	provider := cfg.SearchProvider
	if provider == nil {
		provider = youtube.NewSearchClient(cfg.HTTPClient, "")
	}
	ranker := search.NewRanker(cfg.Club, search.RankerOptions{Policy: cfg.WindowPolicy, Limit: cfg.SearchLimit})

	client.highlights = highlights.NewService(
		deps,
		cfg.Club,
		client.fixtures,
		feed.NewFeedService(deps, cfg.ChannelID),
		matcher.New(cfg.Club, matcher.Options{Strategy: cfg.Strategy}),
		search.NewSearchService(deps, provider, ranker),
		cfg.Flags,
	)

	if cfg.EnableBackgroundRefresh {
		client.worker = workers.NewRefreshWorker(client.fixtures, cfg.Logger, workers.WorkerConfig{
			Interval: cfg.RefreshInterval,
		})
		if err := client.worker.Start(); err != nil {
			client.closeStore()
			return nil, NewError(ErrorTypeInternal, "failed to start refresh worker").WithCause(err)
		}
	}

	return client, nil
}

// Close stops background refresh and releases the fixture store
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.worker != nil {
		_ = c.worker.Stop()
	}
	return c.closeStore()
}

func (c *Client) closeStore() error {
	if c.owned == nil {
		return nil
	}
	return c.owned.Close()
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Refresh fetches the calendars and replaces the stored fixtures
func (c *Client) Refresh(ctx context.Context) (int, error) {
	if err := c.checkOpen(); err != nil {
		return 0, err
	}
	count, err := c.fixtures.Refresh(ctx)
	return count, wrapError(err, "refresh")
}

// Overview returns the stored fixtures split into past and upcoming
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	overview, err := c.fixtures.Overview(ctx, c.config.Now())
	if err != nil {
		return nil, wrapError(err, "overview")
	}
	return overviewToPublic(overview), nil
}

// Fixture returns one stored fixture
func (c *Client) Fixture(ctx context.Context, id string) (*Fixture, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	f, err := c.fixtures.Get(ctx, id)
	if err != nil {
		return nil, wrapError(err, "fixture")
	}
	public := fixtureToPublic(*f)
	return &public, nil
}

// Highlight returns the trusted feed highlight for a fixture, or search
// fallback results when the feed has none
func (c *Client) Highlight(ctx context.Context, fixtureID string) (*Highlight, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	result, err := c.highlights.FindHighlight(ctx, fixtureID)
	if err != nil {
		return nil, wrapError(err, "highlight")
	}
	return highlightToPublic(result), nil
}

// Candidates returns every trusted feed video accepted for a fixture, best first
func (c *Client) Candidates(ctx context.Context, fixtureID string) ([]Video, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	fixture, videos, err := c.highlights.Candidates(ctx, fixtureID)
	if err != nil {
		return nil, wrapError(err, "candidates")
	}
	return videosToPublic(videos, fixture), nil
}

// Search runs the search fallback for a fixture. An empty query uses the fixture default.
func (c *Client) Search(ctx context.Context, fixtureID, query string) ([]Video, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	fixture, videos, err := c.highlights.Search(ctx, fixtureID, query)
	if err != nil {
		return nil, wrapError(err, "search")
	}
	return videosToPublic(videos, fixture), nil
}

// Latest returns the most recently played fixture with its feed highlight,
// or nil when nothing has been played yet
func (c *Client) Latest(ctx context.Context) (*Highlight, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	result, err := c.highlights.Latest(ctx, c.config.Now())
	if err != nil {
		return nil, wrapError(err, "latest")
	}
	return highlightToPublic(result), nil
}

// validateConfig validates the client configuration
func validateConfig(cfg *Config) error {
	if cfg.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if cfg.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if len(cfg.CalendarURLs) == 0 {
		return NewError(ErrorTypeConfiguration, "at least one calendar URL is required")
	}

	if cfg.ChannelID == "" {
		return NewError(ErrorTypeConfiguration, "channel id is required")
	}

	if err := config.ValidateClubProfile(cfg.Club); err != nil {
		return NewError(ErrorTypeConfiguration, "invalid club profile").WithCause(err)
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return nil
}
