// Package api provides the HTTP API layer for the highlights application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: response DTOs and the mappers that build them
// - middleware/: request logging and rate limiting
//
// # Endpoints
//
//	GET  /fixtures                        past and upcoming fixtures plus the latest highlight
//	GET  /fixtures/{id}                   one fixture
//	GET  /fixtures/{id}/highlight         trusted feed highlight or search fallback results
//	GET  /fixtures/{id}/candidates        every accepted trusted feed video
//	GET  /search?fixture_id=&q=           search fallback for a fixture
//	POST /fixtures/refresh                run a refresh cycle
//	GET  /health                          liveness and feature flags
//
// Video titles and thumbnails are replaced with spoiler safe values unless
// the request carries reveal=true.
//
// The OpenAPI document is served at /openapi.json and the Swagger UI at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.Config{
//	    Logger:    logger,
//	    RateLimit: 5,
//	    RateBurst: 20,
//	})
//
//	handlers.NewFixtureHandler(fixtureService, highlightService, nil).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Domain errors map to status codes:
// NotFoundError to 404, ValidationError to 400, ErrNoFixtures and unreachable
// upstreams to 503.
package api
