// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, storage, sources, matching and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default upstream sources
const (
	DefaultPrimaryCalendarURL   = "https://ics.fixtur.es/v2/manchester-united.ics"
	DefaultSecondaryCalendarURL = "https://www.skysports.com/calendars/football/fixtures/teams/manchester-united"
	DefaultChannelID            = "UC9xeuekJd88ku9LDcmGdUOA"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Storage contains fixture persistence configuration
	Storage StorageConfig

	// Sources contains calendar and video source configuration
	Sources SourcesConfig

	// Matching contains matcher and search ranking configuration
	Matching MatchingConfig

	// Log contains logger configuration
	Log LogConfig

	// ClubProfileFile optionally points at a TOML club profile
	ClubProfileFile string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshInterval is the time between scheduled fixture refreshes
	RefreshInterval time.Duration

	// RateLimit is the number of requests per second allowed per client
	RateLimit float64

	// RateBurst is the burst size allowed per client
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// FeedTTL is how long the channel feed payload is reused
	FeedTTL time.Duration

	// SearchTTL is how long raw search results are reused
	SearchTTL time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// StorageConfig holds fixture store configuration
type StorageConfig struct {
	// SQLitePath is the fixture database file
	SQLitePath string
}

// SourcesConfig holds upstream source configuration
type SourcesConfig struct {
	// CalendarURLs are tried in order until one yields fixtures
	CalendarURLs []string

	// ChannelID is the trusted YouTube channel
	ChannelID string

	// FetchTimeout bounds each upstream request
	FetchTimeout time.Duration
}

// MatchingConfig holds matcher and search fallback configuration
type MatchingConfig struct {
	// Strategy is the matcher ranking strategy (most_recent/feed_order)
	Strategy string

	// SearchWindowPolicy is the search publish window (lenient/strict)
	SearchWindowPolicy string

	// SearchLimit is the number of ranked search results returned
	SearchLimit int
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string

	// File enables rotating file output when set
	File string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			RefreshInterval: getEnvAsDurationOrDefault("REFRESH_INTERVAL", 6*time.Hour),
			RateLimit:       getEnvAsFloatOrDefault("RATE_LIMIT", 5),
			RateBurst:       getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			FeedTTL:   getEnvAsDurationOrDefault("FEED_CACHE_TTL", time.Minute),
			SearchTTL: getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 15*time.Minute),
		},
		Storage: StorageConfig{
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "fixtures.db"),
		},
		Sources: SourcesConfig{
			CalendarURLs: getEnvAsListOrDefault("CALENDAR_URLS", []string{DefaultPrimaryCalendarURL, DefaultSecondaryCalendarURL}),
			ChannelID:    getEnvOrDefault("CHANNEL_ID", DefaultChannelID),
			FetchTimeout: getEnvAsDurationOrDefault("FETCH_TIMEOUT", 15*time.Second),
		},
		Matching: MatchingConfig{
			Strategy:           getEnvOrDefault("MATCH_STRATEGY", "most_recent"),
			SearchWindowPolicy: getEnvOrDefault("SEARCH_WINDOW_POLICY", "lenient"),
			SearchLimit:        getEnvAsIntOrDefault("SEARCH_LIMIT", 10),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		ClubProfileFile: getEnvOrDefault("CLUB_PROFILE_FILE", ""),
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or bare seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma separated variable, dropping empty entries
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshInterval < time.Minute {
		return errors.New("refresh interval must be at least 1 minute")
	}

	if c.Server.RateLimit <= 0 || c.Server.RateBurst < 1 {
		return errors.New("rate limit and burst must be positive")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if len(c.Sources.CalendarURLs) == 0 {
		return errors.New("at least one calendar URL is required")
	}

	if c.Sources.ChannelID == "" {
		return errors.New("channel id cannot be empty")
	}

	if c.Sources.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	switch c.Matching.Strategy {
	case "most_recent", "feed_order":
	default:
		return fmt.Errorf("unknown match strategy %q", c.Matching.Strategy)
	}

	switch c.Matching.SearchWindowPolicy {
	case "lenient", "strict":
	default:
		return fmt.Errorf("unknown search window policy %q", c.Matching.SearchWindowPolicy)
	}

	if c.Matching.SearchLimit < 1 || c.Matching.SearchLimit > 50 {
		return errors.New("search limit must be between 1 and 50")
	}

	return nil
}
