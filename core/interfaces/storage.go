// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"highlights-app-api/core/domain"
)

// FixtureStorage defines the interface for fixture persistence
type FixtureStorage interface {
	// ReplaceAll swaps the stored fixture list for the given one in a single step
	ReplaceAll(ctx context.Context, fixtures []domain.Fixture) error

	// List returns every stored fixture, newest first
	List(ctx context.Context) ([]domain.Fixture, error)

	// Get retrieves a fixture by ID
	Get(ctx context.Context, id string) (*domain.Fixture, error)
}
