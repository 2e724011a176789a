// ABOUTME: Minimal ytInitialData shape needed to read search results
// ABOUTME: Only video renderers are kept; shelves, ads and channels are skipped

package youtube

import (
	"strings"

	"highlights-app-api/core/domain"
)

const watchURL = "https://www.youtube.com/watch?v="

type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type text struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t text) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

type videoRenderer struct {
	VideoID string `json:"videoId"`
	Title   text   `json:"title"`
	Thumbnail struct {
		Thumbnails []struct {
			URL string `json:"url"`
		} `json:"thumbnails"`
	} `json:"thumbnail"`
	PublishedTimeText text `json:"publishedTimeText"`
	ViewCountText     text `json:"viewCountText"`
	LengthText        text `json:"lengthText"`
	OwnerText         text `json:"ownerText"`
}

func (d *initialData) videos() []domain.Video {
	videos := make([]domain.Video, 0)
	for _, section := range d.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			if item.VideoRenderer == nil || item.VideoRenderer.VideoID == "" {
				continue
			}
			videos = append(videos, item.VideoRenderer.toVideo())
		}
	}
	return videos
}

func (v *videoRenderer) toVideo() domain.Video {
	video := domain.Video{
		ID:            v.VideoID,
		Title:         v.Title.String(),
		Link:          watchURL + v.VideoID,
		PublishedText: v.PublishedTimeText.String(),
		Channel:       v.OwnerText.String(),
		Duration:      v.LengthText.String(),
		Views:         ParseViewCount(v.ViewCountText.String()),
	}
	if n := len(v.Thumbnail.Thumbnails); n > 0 {
		// Thumbnails are listed smallest first
		video.Thumbnail = v.Thumbnail.Thumbnails[n-1].URL
	}
	return video
}
