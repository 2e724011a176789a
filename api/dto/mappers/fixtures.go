// ABOUTME: Mappers for converting fixtures and videos to API DTOs
// ABOUTME: Applies spoiler hiding and display formatting at the API boundary

package mappers

import (
	"time"

	"highlights-app-api/api/dto/responses"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/highlights"
	"highlights-app-api/pkg/utils/duration"
	"highlights-app-api/pkg/utils/views"
)

// ToFixtureResponse converts a domain Fixture to a FixtureResponse DTO
func ToFixtureResponse(f domain.Fixture, now time.Time) responses.FixtureResponse {
	return responses.FixtureResponse{
		ID:          f.ID,
		Title:       f.Title(),
		Date:        f.Date,
		Opponent:    f.Opponent,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		Competition: f.Competition,
		IsHome:      f.IsHome,
		Played:      f.HasKickedOff(now),
	}
}

// ToFixtureResponses converts a slice of fixtures, never returning nil
func ToFixtureResponses(fixtures []domain.Fixture, now time.Time) []responses.FixtureResponse {
	out := make([]responses.FixtureResponse, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, ToFixtureResponse(f, now))
	}
	return out
}

// ToVideoResponse converts a video. Without reveal the title is replaced by a
// spoiler safe one and the thumbnail is dropped.
func ToVideoResponse(v domain.Video, fixture domain.Fixture, reveal bool) responses.VideoResponse {
	resp := responses.VideoResponse{
		ID:            v.ID,
		Title:         highlights.SpoilerSafeTitle(fixture),
		Link:          v.Link,
		Channel:       v.Channel,
		PublishedText: v.PublishedText,
		Views:         v.Views,
	}

	if reveal {
		resp.Title = v.Title
		resp.Thumbnail = v.Thumbnail
	}
	if v.HasAbsoluteTime() {
		published := v.Published
		resp.Published = &published
	}
	if seconds := duration.ToSeconds(v.Duration); seconds > 0 {
		resp.DurationSeconds = seconds
		resp.Duration = duration.FormatSeconds(seconds)
	}
	if v.Views > 0 {
		resp.ViewsText = views.Compact(v.Views)
	}
	return resp
}

// ToVideoResponses converts a slice of videos, never returning nil
func ToVideoResponses(videos []domain.Video, fixture domain.Fixture, reveal bool) []responses.VideoResponse {
	out := make([]responses.VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, ToVideoResponse(v, fixture, reveal))
	}
	return out
}

// ToHighlightResponse converts a highlight lookup result
func ToHighlightResponse(result *highlights.HighlightResult, now time.Time, reveal bool) *responses.HighlightResponse {
	if result == nil {
		return nil
	}

	resp := &responses.HighlightResponse{
		Fixture:       ToFixtureResponse(result.Fixture, now),
		Source:        string(result.Source),
		SearchResults: ToVideoResponses(result.SearchResults, result.Fixture, reveal),
	}
	if result.Video != nil {
		video := ToVideoResponse(*result.Video, result.Fixture, reveal)
		resp.Video = &video
	}
	return resp
}
