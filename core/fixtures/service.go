// ABOUTME: Fixture service runs refresh cycles and serves the stored fixture list
// ABOUTME: A refresh replaces the stored list wholesale and only when the fetch found fixtures

package fixtures

import (
	"context"
	"errors"
	"sort"
	"time"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

// Overview splits fixtures around a reference instant
type Overview struct {
	// Past fixtures, newest first
	Past []domain.Fixture

	// Upcoming fixtures, soonest first
	Upcoming []domain.Fixture
}

// Service handles fixture refresh and lookup
type Service struct {
	deps    interfaces.Dependencies
	source  interfaces.FixtureSource
	storage interfaces.FixtureStorage
}

// NewService creates a new fixture service
func NewService(deps interfaces.Dependencies, source interfaces.FixtureSource, storage interfaces.FixtureStorage) *Service {
	return &Service{
		deps:    deps,
		source:  source,
		storage: storage,
	}
}

// Refresh fetches fixtures and replaces the stored list.
// It returns ErrNoFixtures and keeps the previous list when nothing was found.
func (s *Service) Refresh(ctx context.Context) (int, error) {
	if s.source == nil || s.storage == nil {
		return 0, errors.New("fixture service not configured")
	}

	fixtures := s.source.FetchFixtures(ctx)
	if len(fixtures) == 0 {
		s.deps.Log().Warn("Fixture refresh found nothing, keeping stored fixtures", nil)
		return 0, coreerrors.ErrNoFixtures
	}

	if err := s.storage.ReplaceAll(ctx, fixtures); err != nil {
		return 0, coreerrors.WrapError(err, "failed to store fixtures")
	}

	s.deps.Log().Info("Updated fixtures", map[string]interface{}{
		"count": len(fixtures),
	})
	return len(fixtures), nil
}

// List returns every stored fixture, newest first
func (s *Service) List(ctx context.Context) ([]domain.Fixture, error) {
	if s.storage == nil {
		return []domain.Fixture{}, nil
	}

	fixtures, err := s.storage.List(ctx)
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to list fixtures")
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Date.After(fixtures[j].Date)
	})
	return fixtures, nil
}

// Get returns a single fixture or a NotFoundError
func (s *Service) Get(ctx context.Context, id string) (*domain.Fixture, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "fixture id cannot be empty"}
	}
	if s.storage == nil {
		return nil, &coreerrors.NotFoundError{Resource: "fixture", ID: id}
	}

	fixture, err := s.storage.Get(ctx, id)
	if err != nil {
		if coreerrors.IsNotFound(err) {
			return nil, err
		}
		return nil, coreerrors.WrapError(err, "failed to load fixture")
	}
	if fixture == nil {
		return nil, &coreerrors.NotFoundError{Resource: "fixture", ID: id}
	}

	return fixture, nil
}

// Overview returns stored fixtures split into past and upcoming around now
func (s *Service) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	fixtures, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return SplitFixtures(fixtures, now), nil
}

// SplitFixtures partitions fixtures around now.
// Past is newest first, upcoming is soonest first.
func SplitFixtures(fixtures []domain.Fixture, now time.Time) *Overview {
	overview := &Overview{
		Past:     []domain.Fixture{},
		Upcoming: []domain.Fixture{},
	}

	for _, f := range fixtures {
		if f.HasKickedOff(now) {
			overview.Past = append(overview.Past, f)
		} else {
			overview.Upcoming = append(overview.Upcoming, f)
		}
	}

	sort.SliceStable(overview.Past, func(i, j int) bool {
		return overview.Past[i].Date.After(overview.Past[j].Date)
	})
	sort.SliceStable(overview.Upcoming, func(i, j int) bool {
		return overview.Upcoming[i].Date.Before(overview.Upcoming[j].Date)
	})

	return overview
}
