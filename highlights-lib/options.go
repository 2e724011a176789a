// ABOUTME: Configuration options for the highlights library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package highlightslib

import (
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
	"highlights-app-api/core/matcher"
	"highlights-app-api/core/search"
	"highlights-app-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQuietMode suppresses all log output
func WithQuietMode() Option {
	return WithLogger(interfaces.NopLogger{})
}

// WithFixtureStorage sets a custom fixture store. The client does not close it.
func WithFixtureStorage(storage interfaces.FixtureStorage) Option {
	return func(c *Config) error {
		c.Storage = storage
		return nil
	}
}

// WithSQLitePath sets the file used by the default SQLite fixture store
func WithSQLitePath(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewError(ErrorTypeConfiguration, "sqlite path cannot be empty")
		}
		c.SQLitePath = path
		return nil
	}
}

// WithClubProfile replaces the tracked club
func WithClubProfile(club domain.ClubProfile) Option {
	return func(c *Config) error {
		c.Club = club
		return nil
	}
}

// WithCalendarURLs sets the ICS sources, tried in order
func WithCalendarURLs(urls ...string) Option {
	return func(c *Config) error {
		if len(urls) == 0 {
			return NewError(ErrorTypeConfiguration, "at least one calendar URL is required")
		}
		c.CalendarURLs = urls
		return nil
	}
}

// WithChannelID sets the trusted channel
func WithChannelID(id string) Option {
	return func(c *Config) error {
		c.ChannelID = id
		return nil
	}
}

// WithFetchTimeout bounds each upstream request
func WithFetchTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.FetchTimeout = timeout
		return nil
	}
}

// WithMatchStrategy selects how accepted feed videos are ordered
func WithMatchStrategy(strategy string) Option {
	return func(c *Config) error {
		s, err := matcher.ParseRankingStrategy(strategy)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid match strategy").WithCause(err)
		}
		c.Strategy = s
		return nil
	}
}

// WithSearchWindowPolicy selects the publish window for search results
func WithSearchWindowPolicy(policy string) Option {
	return func(c *Config) error {
		p, err := search.ParseWindowPolicy(policy)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "invalid search window policy").WithCause(err)
		}
		c.WindowPolicy = p
		return nil
	}
}

// WithSearchProvider replaces the open search provider
func WithSearchProvider(provider interfaces.VideoSearchProvider) Option {
	return func(c *Config) error {
		c.SearchProvider = provider
		return nil
	}
}

// WithFeatureFlags sets the feature flag manager
func WithFeatureFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithBackgroundRefresh refreshes fixtures immediately and then every interval
func WithBackgroundRefresh(interval time.Duration) Option {
	return func(c *Config) error {
		c.EnableBackgroundRefresh = true
		c.RefreshInterval = interval
		return nil
	}
}

// WithClock overrides the current time source
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		c.Now = now
		return nil
	}
}
