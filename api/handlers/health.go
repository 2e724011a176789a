// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and the current feature flag states

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"highlights-app-api/api/dto/responses"
	"highlights-app-api/pkg/featureflags"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	flags featureflags.Manager
}

// NewHealthHandler creates a new health handler. flags may be nil.
func NewHealthHandler(flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	features := make(map[string]bool, len(featureflags.All))
	for _, flag := range featureflags.All {
		features[string(flag)] = featureflags.Enabled(ctx, h.flags, flag)
	}

	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:   "ok",
			Features: features,
		},
	}, nil
}
