package handlers

import (
	"context"
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/fixtures"
	"highlights-app-api/core/highlights"
)

// mockFixtureService is a mock implementation of FixtureService
type mockFixtureService struct {
	overviewFunc func(ctx context.Context, now time.Time) (*fixtures.Overview, error)
	getFunc      func(ctx context.Context, id string) (*domain.Fixture, error)
	refreshFunc  func(ctx context.Context) (int, error)
}

func (m *mockFixtureService) Overview(ctx context.Context, now time.Time) (*fixtures.Overview, error) {
	if m.overviewFunc != nil {
		return m.overviewFunc(ctx, now)
	}
	return &fixtures.Overview{}, nil
}

func (m *mockFixtureService) Get(ctx context.Context, id string) (*domain.Fixture, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFixtureService) Refresh(ctx context.Context) (int, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return 0, nil
}

// mockHighlightService is a mock implementation of HighlightService
type mockHighlightService struct {
	findFunc       func(ctx context.Context, fixtureID string) (*highlights.HighlightResult, error)
	candidatesFunc func(ctx context.Context, fixtureID string) (domain.Fixture, []domain.Video, error)
	searchFunc     func(ctx context.Context, fixtureID, query string) (domain.Fixture, []domain.Video, error)
	latestFunc     func(ctx context.Context, now time.Time) (*highlights.HighlightResult, error)
}

func (m *mockHighlightService) FindHighlight(ctx context.Context, fixtureID string) (*highlights.HighlightResult, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, fixtureID)
	}
	return nil, nil
}

func (m *mockHighlightService) Candidates(ctx context.Context, fixtureID string) (domain.Fixture, []domain.Video, error) {
	if m.candidatesFunc != nil {
		return m.candidatesFunc(ctx, fixtureID)
	}
	return domain.Fixture{}, nil, nil
}

func (m *mockHighlightService) Search(ctx context.Context, fixtureID, query string) (domain.Fixture, []domain.Video, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, fixtureID, query)
	}
	return domain.Fixture{}, nil, nil
}

func (m *mockHighlightService) Latest(ctx context.Context, now time.Time) (*highlights.HighlightResult, error) {
	if m.latestFunc != nil {
		return m.latestFunc(ctx, now)
	}
	return nil, nil
}
