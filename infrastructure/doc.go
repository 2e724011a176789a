// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence, scraping and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache on go-redis
// - http/standard: net/http client with retry and backoff
// - logger/logrus: logrus logger with optional lumberjack file rotation
// - storage/sqlite: fixture store on mattn/go-sqlite3
// - youtube: search results page client (goquery + sonic)
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
//	value, err := cache.Get(ctx, "key") // interfaces.ErrCacheMiss when absent
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client retries network errors and 5xx responses with exponential
// backoff:
//
//	client := standard.NewStandardHTTPClient(15*time.Second, standard.WithUserAgent("HighlightsAPI/1.0"))
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New(logrus.Config{Level: "info", Format: "json"})
//	logger.Info("Updated fixtures", map[string]interface{}{
//	    "count": 38,
//	})
package infrastructure
