// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Bundles cache, HTTP, logging and clock collaborators shared by every service

package interfaces

import "time"

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides caching functionality
	Cache Cache

	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Now returns the current instant; nil means time.Now
	Now func() time.Time
}

// Clock returns the configured clock or time.Now
func (d Dependencies) Clock() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Log returns the configured logger or a no-op logger
func (d Dependencies) Log() Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return NopLogger{}
}
