// ABOUTME: Main entry point for the Highlights API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"highlights-app-api/api"
	"highlights-app-api/api/handlers"
	"highlights-app-api/core/feed"
	"highlights-app-api/core/fixtures"
	"highlights-app-api/core/highlights"
	"highlights-app-api/core/interfaces"
	"highlights-app-api/core/matcher"
	"highlights-app-api/core/search"
	"highlights-app-api/core/workers"
	"highlights-app-api/infrastructure/cache/memory"
	"highlights-app-api/infrastructure/cache/redis"
	stdhttp "highlights-app-api/infrastructure/http/standard"
	logruslogger "highlights-app-api/infrastructure/logger/logrus"
	"highlights-app-api/infrastructure/storage/sqlite"
	"highlights-app-api/infrastructure/youtube"
	"highlights-app-api/pkg/config"
	"highlights-app-api/pkg/featureflags"
)

// browserUserAgent is sent upstream because the results page serves a reduced
// document without ytInitialData to unknown agents
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0.0.0 Safari/537.36"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(logruslogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Highlights API", map[string]interface{}{
		"port":             cfg.Server.Port,
		"cache_type":       cfg.Cache.Type,
		"refresh_interval": cfg.Server.RefreshInterval.String(),
		"calendar_sources": len(cfg.Sources.CalendarURLs),
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	club, err := config.LoadClubProfile(cfg.ClubProfileFile)
	if err != nil {
		log.Fatalf("Failed to load club profile: %v", err)
	}

	var cache interfaces.Cache
	if featureflags.Enabled(ctx, flags, featureflags.Cache) {
		cache = newCache(cfg, logger)
	} else {
		logger.Info("Caching disabled", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Sources.FetchTimeout,
		stdhttp.WithUserAgent(browserUserAgent),
		stdhttp.WithHeader("Accept-Language", "en-US,en;q=0.9"),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	store, err := sqlite.NewFixtureStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open fixture store: %v", err)
	}
	defer store.Close()

	calendar := fixtures.NewCalendarService(deps, fixtures.NewParser(club), cfg.Sources.CalendarURLs, cfg.Sources.FetchTimeout)
	fixtureService := fixtures.NewService(deps, calendar, store)

	feedService := feed.NewFeedService(deps, cfg.Sources.ChannelID)
	feedService.SetCacheTTL(cfg.Cache.FeedTTL)

	// Both values were checked by Validate
	strategy, _ := matcher.ParseRankingStrategy(cfg.Matching.Strategy)
	policy, _ := search.ParseWindowPolicy(cfg.Matching.SearchWindowPolicy)

	m := matcher.New(club, matcher.Options{Strategy: strategy})
	ranker := search.NewRanker(club, search.RankerOptions{Policy: policy, Limit: cfg.Matching.SearchLimit})
	searchService := search.NewSearchService(deps, youtube.NewSearchClient(httpClient, ""), ranker)
	searchService.SetCacheTTL(cfg.Cache.SearchTTL)

	highlightService := highlights.NewService(deps, club, fixtureService, feedService, m, searchService, flags)

	if featureflags.Enabled(ctx, flags, featureflags.RefreshWorker) {
		worker := workers.NewRefreshWorker(fixtureService, logger, workers.WorkerConfig{
			Interval: cfg.Server.RefreshInterval,
			Timeout:  2 * cfg.Sources.FetchTimeout * time.Duration(len(cfg.Sources.CalendarURLs)),
		})
		if err := worker.Start(); err != nil {
			log.Fatalf("Failed to start refresh worker: %v", err)
		}
		defer worker.Stop()
	} else {
		logger.Info("Refresh worker disabled, use POST /fixtures/refresh", nil)
	}

	apiConfig := api.Config{Logger: logger}
	if featureflags.Enabled(ctx, flags, featureflags.RateLimit) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewFixtureHandler(fixtureService, highlightService, nil).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured cache backend, falling back to memory when Redis is unreachable
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	if cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache()
}
