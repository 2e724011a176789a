// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package highlightslib

import (
	"os"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
	"highlights-app-api/core/matcher"
	"highlights-app-api/core/search"
	"highlights-app-api/infrastructure/cache/memory"
	httpInfra "highlights-app-api/infrastructure/http/standard"
	loggerInfra "highlights-app-api/infrastructure/logger/logrus"
	"highlights-app-api/pkg/config"
	"highlights-app-api/pkg/featureflags"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(15*time.Second, httpInfra.WithUserAgent("Highlights-Library/1.0"))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a logger that writes warnings and errors to stderr as text
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewWithWriter(os.Stderr, "warn")
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:        DefaultMemoryCache(),
		HTTPClient:   DefaultHTTPClient(),
		Logger:       DefaultLogger(),
		SQLitePath:   "fixtures.db",
		Club:         domain.DefaultClubProfile(),
		CalendarURLs: []string{config.DefaultPrimaryCalendarURL, config.DefaultSecondaryCalendarURL},
		ChannelID:    config.DefaultChannelID,
		FetchTimeout: 15 * time.Second,
		Strategy:     matcher.MostRecent,
		WindowPolicy: search.Lenient,
		SearchLimit:  search.DefaultLimit,
		Flags:        featureflags.NewStaticManager(copyDefaults()),
		Now:          time.Now,
	}
}

func copyDefaults() map[featureflags.FeatureFlag]bool {
	flags := make(map[featureflags.FeatureFlag]bool, len(featureflags.Defaults))
	for k, v := range featureflags.Defaults {
		flags[k] = v
	}
	return flags
}
