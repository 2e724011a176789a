package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/highlights"
)

// TestHighlightResponse_Contract pins the JSON field names clients depend on
func TestHighlightResponse_Contract(t *testing.T) {
	hs := &mockHighlightService{
		findFunc: func(ctx context.Context, fixtureID string) (*highlights.HighlightResult, error) {
			v := spursHighlight
			v.Duration = "10:42"
			v.Views = 12345
			return &highlights.HighlightResult{Fixture: spurs, Video: &v, SearchResults: []domain.Video{}, Source: highlights.SourceFeed}, nil
		},
	}

	resp := newTestAPI(t, &mockFixtureService{}, hs).Get("/fixtures/spurs/highlight")
	require.Equal(t, http.StatusOK, resp.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &raw))
	for _, key := range []string{"fixture", "source", "video", "search_results"} {
		assert.Contains(t, raw, key)
	}

	var fixture map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["fixture"], &fixture))
	for _, key := range []string{"id", "title", "date", "opponent", "home_team", "away_team", "competition", "is_home", "played"} {
		assert.Contains(t, fixture, key)
	}

	var video map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["video"], &video))
	for _, key := range []string{"id", "title", "link", "published", "duration", "duration_seconds", "views", "views_text"} {
		assert.Contains(t, video, key)
	}
	assert.NotContains(t, video, "thumbnail")

	// The search list is always an array, never null
	assert.Equal(t, "[]", string(raw["search_results"]))
}

// TestResponses_NeverLeakScoreline checks every video field that is shown by default
func TestResponses_NeverLeakScoreline(t *testing.T) {
	hs := &mockHighlightService{
		candidatesFunc: func(ctx context.Context, fixtureID string) (domain.Fixture, []domain.Video, error) {
			return spurs, []domain.Video{spursHighlight, {ID: "x", Title: "Spurs 2-2 United | Late drama"}}, nil
		},
	}

	resp := newTestAPI(t, &mockFixtureService{}, hs).Get("/fixtures/spurs/candidates")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, strings.Contains(resp.Body.String(), "2-2"), resp.Body.String())
}
