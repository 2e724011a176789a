// ABOUTME: Feed service reads the trusted channel's Atom feed into normalized videos
// ABOUTME: Parsing is tolerant of missing fields; fetch failures degrade to an empty list

package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	coreerrors "highlights-app-api/core/errors"
	"highlights-app-api/core/domain"
	"highlights-app-api/core/interfaces"
)

const (
	// ChannelFeedURL is the public Atom feed of a YouTube channel
	ChannelFeedURL = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"

	// DefaultCacheTTL keeps a fetched payload briefly to absorb page reloads
	DefaultCacheTTL = time.Minute

	videoIDPrefix = "yt:video:"
)

// Read parses a raw feed payload into videos, preserving feed order.
// A feed with no entries yields an empty slice.
func Read(content []byte) ([]domain.Video, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, errors.New("empty feed content")
	}

	parsedFeed, err := gofeed.NewParser().Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	videos := make([]domain.Video, 0, len(parsedFeed.Items))
	for _, item := range parsedFeed.Items {
		if item == nil {
			continue
		}
		videos = append(videos, convertItemToVideo(item, parsedFeed))
	}

	return videos, nil
}

// convertItemToVideo converts a gofeed item to a domain video
func convertItemToVideo(item *gofeed.Item, feed *gofeed.Feed) domain.Video {
	video := domain.Video{
		ID:    videoID(item),
		Title: strings.TrimSpace(item.Title),
		Link:  item.Link,
	}

	if item.PublishedParsed != nil {
		video.Published = item.PublishedParsed.UTC()
	} else if item.UpdatedParsed != nil {
		video.Published = item.UpdatedParsed.UTC()
	}

	if len(item.Authors) > 0 && item.Authors[0] != nil {
		video.Channel = item.Authors[0].Name
	} else if item.Author != nil {
		video.Channel = item.Author.Name
	} else if feed != nil {
		video.Channel = feed.Title
	}

	if group := firstExtension(item.Extensions, "media", "group"); group != nil {
		if thumb := firstChild(group, "thumbnail"); thumb != nil {
			video.Thumbnail = thumb.Attrs["url"]
		}
		if community := firstChild(group, "community"); community != nil {
			if stats := firstChild(community, "statistics"); stats != nil {
				video.Views, _ = strconv.ParseInt(stats.Attrs["views"], 10, 64)
			}
		}
	}
	if video.Thumbnail == "" && item.Image != nil {
		video.Thumbnail = item.Image.URL
	}

	return video
}

// videoID prefers the yt:videoId extension, then the entry id, then the link
func videoID(item *gofeed.Item) string {
	if e := firstExtension(item.Extensions, "yt", "videoId"); e != nil && e.Value != "" {
		return strings.TrimSpace(e.Value)
	}
	if item.GUID != "" {
		return strings.TrimPrefix(item.GUID, videoIDPrefix)
	}
	return item.Link
}

func firstExtension(exts ext.Extensions, prefix, name string) *ext.Extension {
	if exts == nil {
		return nil
	}
	values := exts[prefix][name]
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

func firstChild(e *ext.Extension, name string) *ext.Extension {
	values := e.Children[name]
	if len(values) == 0 {
		return nil
	}
	return &values[0]
}

// FeedService fetches the trusted channel feed
type FeedService struct {
	deps     interfaces.Dependencies
	feedURL  string
	cacheTTL time.Duration
}

// NewFeedService creates a feed service for the given channel id
func NewFeedService(deps interfaces.Dependencies, channelID string) *FeedService {
	return &FeedService{
		deps:     deps,
		feedURL:  fmt.Sprintf(ChannelFeedURL, url.QueryEscape(channelID)),
		cacheTTL: DefaultCacheTTL,
	}
}

// SetCacheTTL overrides how long fetched payloads are cached
func (s *FeedService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

// FeedURL returns the channel feed URL
func (s *FeedService) FeedURL() string {
	return s.feedURL
}

// FetchChannelVideos returns the channel's latest videos.
// Any failure is logged and yields an empty slice.
func (s *FeedService) FetchChannelVideos(ctx context.Context) []domain.Video {
	videos, err := s.fetch(ctx)
	if err != nil {
		s.deps.Log().Error("Error fetching channel videos", map[string]interface{}{
			"url":   s.feedURL,
			"error": err.Error(),
		})
		return []domain.Video{}
	}
	return videos
}

func (s *FeedService) fetch(ctx context.Context) ([]domain.Video, error) {
	if payload := s.getCachedPayload(ctx); payload != nil {
		if videos, err := Read(payload); err == nil {
			return videos, nil
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.feedURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        "channel-feed",
		}
	}

	payload, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}

	videos, err := Read(payload)
	if err != nil {
		return nil, err
	}

	// Cache the payload (ignore cache errors)
	if s.deps.Cache != nil && s.cacheTTL > 0 {
		_ = s.deps.Cache.Set(ctx, s.cacheKey(), payload, s.cacheTTL)
	}

	return videos, nil
}

func (s *FeedService) getCachedPayload(ctx context.Context) []byte {
	if s.deps.Cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	data, err := s.deps.Cache.Get(ctx, s.cacheKey())
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

func (s *FeedService) cacheKey() string {
	return "feed:" + s.feedURL
}
