// ABOUTME: Response DTOs for fixture and highlight endpoints
// ABOUTME: Video titles are spoiler safe unless the caller asked to reveal them

package responses

import "time"

// FixtureResponse represents a fixture in API responses
type FixtureResponse struct {
	ID          string    `json:"id" doc:"Stable fixture identifier"`
	Title       string    `json:"title" doc:"Home vs Away label"`
	Date        time.Time `json:"date" doc:"Kickoff instant in UTC"`
	Opponent    string    `json:"opponent" doc:"Opposing team"`
	HomeTeam    string    `json:"home_team" doc:"Home team as listed by the calendar"`
	AwayTeam    string    `json:"away_team" doc:"Away team as listed by the calendar"`
	Competition string    `json:"competition" doc:"Competition name or Unknown"`
	IsHome      bool      `json:"is_home" doc:"Whether the tracked club plays at home"`
	Played      bool      `json:"played" doc:"Whether kickoff has passed"`
}

// VideoResponse represents a highlight video in API responses
type VideoResponse struct {
	ID              string     `json:"id" doc:"Video identifier"`
	Title           string     `json:"title" doc:"Spoiler safe title unless reveal=true"`
	Link            string     `json:"link" doc:"Watch URL"`
	Thumbnail       string     `json:"thumbnail,omitempty" doc:"Thumbnail URL, only with reveal=true"`
	Channel         string     `json:"channel,omitempty" doc:"Uploading channel"`
	Published       *time.Time `json:"published,omitempty" doc:"Publish instant when known"`
	PublishedText   string     `json:"published_text,omitempty" doc:"Relative publish time from search results"`
	Duration        string     `json:"duration,omitempty" doc:"Video length as H:MM:SS"`
	DurationSeconds int        `json:"duration_seconds,omitempty" doc:"Video length in seconds"`
	Views           int64      `json:"views,omitempty" doc:"View count"`
	ViewsText       string     `json:"views_text,omitempty" doc:"Compact view count, e.g. 12.3K"`
}

// HighlightResponse is the result of a highlight lookup
type HighlightResponse struct {
	Fixture       FixtureResponse `json:"fixture"`
	Source        string          `json:"source" enum:"feed,search,none" doc:"Where the highlight came from"`
	Video         *VideoResponse  `json:"video,omitempty" doc:"Trusted feed highlight"`
	SearchResults []VideoResponse `json:"search_results" doc:"Search fallback results, most viewed first"`
}

// OverviewResponse is the home page listing
type OverviewResponse struct {
	Latest   *HighlightResponse `json:"latest,omitempty" doc:"Most recent played fixture and its highlight"`
	Past     []FixtureResponse  `json:"past" doc:"Played fixtures, newest first"`
	Upcoming []FixtureResponse  `json:"upcoming" doc:"Upcoming fixtures, soonest first"`
}

// CandidatesResponse lists every accepted trusted feed video for a fixture
type CandidatesResponse struct {
	Fixture    FixtureResponse `json:"fixture"`
	Candidates []VideoResponse `json:"candidates" doc:"Accepted videos, best first"`
}

// SearchResponse lists search fallback results for a fixture
type SearchResponse struct {
	Fixture FixtureResponse `json:"fixture"`
	Query   string          `json:"query,omitempty" doc:"Custom query, empty when the fixture default was used"`
	Results []VideoResponse `json:"results" doc:"Ranked results, most viewed first"`
}

// RefreshResponse reports a refresh cycle
type RefreshResponse struct {
	Count       int       `json:"count" doc:"Number of fixtures stored"`
	RefreshedAt time.Time `json:"refreshed_at" doc:"When the refresh completed"`
}

// HealthResponse reports service status and feature flags
type HealthResponse struct {
	Status   string          `json:"status" doc:"Always ok when the server answers"`
	Features map[string]bool `json:"features" doc:"Feature flag states"`
}
