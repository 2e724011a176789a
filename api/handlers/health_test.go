package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highlights-app-api/api/dto/responses"
	"highlights-app-api/pkg/featureflags"
)

func TestHealth(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SearchFallback: false,
		featureflags.Cache:          true,
	})

	_, api := humatest.New(t)
	NewHealthHandler(flags).RegisterRoutes(api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.False(t, body.Features["search_fallback"])
	assert.True(t, body.Features["cache"])
	assert.False(t, body.Features["refresh_worker"])
	assert.Len(t, body.Features, len(featureflags.All))
}

func TestHealth_NilManagerUsesDefaults(t *testing.T) {
	_, api := humatest.New(t)
	NewHealthHandler(nil).RegisterRoutes(api)

	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(api.Get("/health").Body.Bytes(), &body))
	for _, flag := range featureflags.All {
		assert.True(t, body.Features[string(flag)], flag)
	}
}
