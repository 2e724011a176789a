// ABOUTME: Video domain model represents one piece of media from the trusted feed or a search
// ABOUTME: Carries either an absolute publish instant or a relative publish string

package domain

import "time"

// Video represents a single media item.
// ID is opaque and only unique within its source.
type Video struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`

	// Published is set for trusted-feed entries
	Published time.Time `json:"published,omitempty"`

	// PublishedText is the relative publish string of search results (e.g. "2 weeks ago")
	PublishedText string `json:"publishedText,omitempty"`

	// Presentation metadata, never used for matching
	Thumbnail string `json:"thumbnail,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Duration  string `json:"duration,omitempty"`

	// Views is only used to rank search results
	Views int64 `json:"views,omitempty"`
}

// HasAbsoluteTime reports whether the video carries a usable publish instant
func (v *Video) HasAbsoluteTime() bool {
	return !v.Published.IsZero()
}
