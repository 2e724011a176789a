// ABOUTME: Public types for the highlights library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package highlightslib

import (
	"time"

	"highlights-app-api/core/domain"
	"highlights-app-api/core/fixtures"
	"highlights-app-api/core/highlights"
)

// Fixture represents one scheduled match of the tracked club
type Fixture struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Opponent    string    `json:"opponent"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	Competition string    `json:"competition"`
	IsHome      bool      `json:"is_home"`
}

// Video represents a highlight video. Title and Thumbnail may give away the
// result; use SafeTitle when spoilers must be avoided.
type Video struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	SafeTitle     string    `json:"safe_title"`
	Link          string    `json:"link"`
	Thumbnail     string    `json:"thumbnail,omitempty"`
	Channel       string    `json:"channel,omitempty"`
	Published     time.Time `json:"published,omitempty"`
	PublishedText string    `json:"published_text,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Views         int64     `json:"views,omitempty"`
}

// Highlight is the outcome of a highlight lookup
type Highlight struct {
	Fixture       Fixture `json:"fixture"`
	Source        string  `json:"source"`
	Video         *Video  `json:"video,omitempty"`
	SearchResults []Video `json:"search_results"`
}

// Overview splits the stored fixtures around the current instant
type Overview struct {
	Past     []Fixture `json:"past"`
	Upcoming []Fixture `json:"upcoming"`
}

func fixtureToPublic(f domain.Fixture) Fixture {
	return Fixture{
		ID:          f.ID,
		Title:       f.Title(),
		Date:        f.Date,
		Opponent:    f.Opponent,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		Competition: f.Competition,
		IsHome:      f.IsHome,
	}
}

func fixturesToPublic(fs []domain.Fixture) []Fixture {
	out := make([]Fixture, len(fs))
	for i, f := range fs {
		out[i] = fixtureToPublic(f)
	}
	return out
}

func videoToPublic(v domain.Video, fixture domain.Fixture) Video {
	return Video{
		ID:            v.ID,
		Title:         v.Title,
		SafeTitle:     highlights.SpoilerSafeTitle(fixture),
		Link:          v.Link,
		Thumbnail:     v.Thumbnail,
		Channel:       v.Channel,
		Published:     v.Published,
		PublishedText: v.PublishedText,
		Duration:      v.Duration,
		Views:         v.Views,
	}
}

func videosToPublic(vs []domain.Video, fixture domain.Fixture) []Video {
	out := make([]Video, len(vs))
	for i, v := range vs {
		out[i] = videoToPublic(v, fixture)
	}
	return out
}

func highlightToPublic(r *highlights.HighlightResult) *Highlight {
	if r == nil {
		return nil
	}
	h := &Highlight{
		Fixture:       fixtureToPublic(r.Fixture),
		Source:        string(r.Source),
		SearchResults: videosToPublic(r.SearchResults, r.Fixture),
	}
	if r.Video != nil {
		v := videoToPublic(*r.Video, r.Fixture)
		h.Video = &v
	}
	return h
}

func overviewToPublic(o *fixtures.Overview) *Overview {
	return &Overview{
		Past:     fixturesToPublic(o.Past),
		Upcoming: fixturesToPublic(o.Upcoming),
	}
}
