// ABOUTME: Fixture and highlight handlers for the Huma API
// ABOUTME: Serves the fixture overview, per-fixture highlights, search fallback and refresh

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"

	"highlights-app-api/api/dto/mappers"
	"highlights-app-api/api/dto/responses"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/fixtures"
	"highlights-app-api/core/highlights"
)

// FixtureService defines the methods needed from the fixture service
type FixtureService interface {
	Overview(ctx context.Context, now time.Time) (*fixtures.Overview, error)
	Get(ctx context.Context, id string) (*domain.Fixture, error)
	Refresh(ctx context.Context) (int, error)
}

// HighlightService defines the methods needed from the highlight service
type HighlightService interface {
	FindHighlight(ctx context.Context, fixtureID string) (*highlights.HighlightResult, error)
	Candidates(ctx context.Context, fixtureID string) (domain.Fixture, []domain.Video, error)
	Search(ctx context.Context, fixtureID, query string) (domain.Fixture, []domain.Video, error)
	Latest(ctx context.Context, now time.Time) (*highlights.HighlightResult, error)
}

// FixtureHandler handles fixture and highlight HTTP requests
type FixtureHandler struct {
	fixtures   FixtureService
	highlights HighlightService
	now        func() time.Time
}

// NewFixtureHandler creates a new fixture handler. now may be nil.
func NewFixtureHandler(fixtureService FixtureService, highlightService HighlightService, now func() time.Time) *FixtureHandler {
	if now == nil {
		now = time.Now
	}
	return &FixtureHandler{
		fixtures:   fixtureService,
		highlights: highlightService,
		now:        now,
	}
}

// RegisterRoutes registers all fixture-related routes
func (h *FixtureHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listFixtures",
		Method:      http.MethodGet,
		Path:        "/fixtures",
		Summary:     "List fixtures",
		Description: "Returns past and upcoming fixtures together with the latest played fixture and its highlight",
		Tags:        []string{"Fixtures"},
	}, h.ListFixtures)

	huma.Register(api, huma.Operation{
		OperationID: "getFixture",
		Method:      http.MethodGet,
		Path:        "/fixtures/{id}",
		Summary:     "Get a fixture",
		Tags:        []string{"Fixtures"},
	}, h.GetFixture)

	huma.Register(api, huma.Operation{
		OperationID: "getHighlight",
		Method:      http.MethodGet,
		Path:        "/fixtures/{id}/highlight",
		Summary:     "Get the highlight for a fixture",
		Description: "Returns the trusted feed highlight, or ranked search results when the feed has none",
		Tags:        []string{"Highlights"},
	}, h.GetHighlight)

	huma.Register(api, huma.Operation{
		OperationID: "getCandidates",
		Method:      http.MethodGet,
		Path:        "/fixtures/{id}/candidates",
		Summary:     "List highlight candidates",
		Description: "Returns every trusted feed video accepted for the fixture, best first",
		Tags:        []string{"Highlights"},
	}, h.GetCandidates)

	huma.Register(api, huma.Operation{
		OperationID: "searchHighlights",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Search for highlights",
		Description: "Runs the open search fallback for a fixture, optionally with a custom query",
		Tags:        []string{"Highlights"},
	}, h.SearchHighlights)

	huma.Register(api, huma.Operation{
		OperationID: "refreshFixtures",
		Method:      http.MethodPost,
		Path:        "/fixtures/refresh",
		Summary:     "Refresh fixtures",
		Description: "Fetches the calendars and replaces the stored fixture list",
		Tags:        []string{"Fixtures"},
	}, h.RefreshFixtures)
}

// ListFixturesOutput defines the output for the ListFixtures operation
type ListFixturesOutput struct {
	Body responses.OverviewResponse
}

// ListFixtures handles GET /fixtures
func (h *FixtureHandler) ListFixtures(ctx context.Context, _ *struct{}) (*ListFixturesOutput, error) {
	now := h.now()

	var (
		overview *fixtures.Overview
		latest   *highlights.HighlightResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = h.fixtures.Overview(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = h.highlights.Latest(gctx, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, toHumaError(err)
	}

	return &ListFixturesOutput{
		Body: responses.OverviewResponse{
			Latest:   mappers.ToHighlightResponse(latest, now, false),
			Past:     mappers.ToFixtureResponses(overview.Past, now),
			Upcoming: mappers.ToFixtureResponses(overview.Upcoming, now),
		},
	}, nil
}

// FixtureInput identifies a fixture by path
type FixtureInput struct {
	ID string `path:"id" minLength:"1" maxLength:"200" doc:"Fixture identifier"`
}

// FixtureOutput defines the output for the GetFixture operation
type FixtureOutput struct {
	Body responses.FixtureResponse
}

// GetFixture handles GET /fixtures/{id}
func (h *FixtureHandler) GetFixture(ctx context.Context, input *FixtureInput) (*FixtureOutput, error) {
	fixture, err := h.fixtures.Get(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FixtureOutput{Body: mappers.ToFixtureResponse(*fixture, h.now())}, nil
}

// RevealInput identifies a fixture and whether spoilers may be shown
type RevealInput struct {
	ID     string `path:"id" minLength:"1" maxLength:"200" doc:"Fixture identifier"`
	Reveal bool   `query:"reveal" doc:"Show real video titles and thumbnails"`
}

// HighlightOutput defines the output for the GetHighlight operation
type HighlightOutput struct {
	Body responses.HighlightResponse
}

// GetHighlight handles GET /fixtures/{id}/highlight
func (h *FixtureHandler) GetHighlight(ctx context.Context, input *RevealInput) (*HighlightOutput, error) {
	result, err := h.highlights.FindHighlight(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &HighlightOutput{Body: *mappers.ToHighlightResponse(result, h.now(), input.Reveal)}, nil
}

// CandidatesOutput defines the output for the GetCandidates operation
type CandidatesOutput struct {
	Body responses.CandidatesResponse
}

// GetCandidates handles GET /fixtures/{id}/candidates
func (h *FixtureHandler) GetCandidates(ctx context.Context, input *RevealInput) (*CandidatesOutput, error) {
	fixture, videos, err := h.highlights.Candidates(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &CandidatesOutput{
		Body: responses.CandidatesResponse{
			Fixture:    mappers.ToFixtureResponse(fixture, h.now()),
			Candidates: mappers.ToVideoResponses(videos, fixture, input.Reveal),
		},
	}, nil
}

// SearchInput defines the input for the SearchHighlights operation
type SearchInput struct {
	FixtureID string `query:"fixture_id" required:"true" minLength:"1" doc:"Fixture to search highlights for"`
	Query     string `query:"q" maxLength:"100" doc:"Custom search query; defaults to one built from the fixture"`
	Reveal    bool   `query:"reveal" doc:"Show real video titles and thumbnails"`
}

// SearchOutput defines the output for the SearchHighlights operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// SearchHighlights handles GET /search
func (h *FixtureHandler) SearchHighlights(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	fixture, videos, err := h.highlights.Search(ctx, input.FixtureID, input.Query)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{
		Body: responses.SearchResponse{
			Fixture: mappers.ToFixtureResponse(fixture, h.now()),
			Query:   input.Query,
			Results: mappers.ToVideoResponses(videos, fixture, input.Reveal),
		},
	}, nil
}

// RefreshOutput defines the output for the RefreshFixtures operation
type RefreshOutput struct {
	Body responses.RefreshResponse
}

// RefreshFixtures handles POST /fixtures/refresh
func (h *FixtureHandler) RefreshFixtures(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	count, err := h.fixtures.Refresh(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &RefreshOutput{
		Body: responses.RefreshResponse{
			Count:       count,
			RefreshedAt: h.now().UTC(),
		},
	}, nil
}
