// Package core contains the business logic for the highlights API.
// It is framework-agnostic and can be used without any web framework or
// infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: fixtures, videos, the club profile and match candidates
// - fixtures: ICS calendar fetching, fixture parsing and refresh
// - feed: the trusted channel Atom feed reader
// - matcher: trusted feed highlight selection
// - search: the open search fallback and its ranker
// - highlights: resolves a fixture to a highlight, feed first then search
// - workers: the periodic fixture refresh
// - errors: custom error types
// - interfaces: contracts for external dependencies (cache, HTTP, logger, storage)
//
// Collaborators never raise into the matching core. Upstream failures are
// logged and degrade to empty results; "no match" is nil or an empty slice.
//
// # Usage Example
//
//	import (
//	    "highlights-app-api/core/domain"
//	    "highlights-app-api/core/feed"
//	    "highlights-app-api/core/interfaces"
//	    "highlights-app-api/core/matcher"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	videos := feed.NewFeedService(deps, channelID).FetchChannelVideos(ctx)
//	best := matcher.New(domain.DefaultClubProfile(), matcher.Options{}).SelectBest(fixture, videos)
package core
