package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"highlights-app-api/core/interfaces"
)

const channelFeedTwoEntries = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns:media="http://search.yahoo.com/mrss/" xmlns="http://www.w3.org/2005/Atom">
 <title>K+ SPORTS</title>
 <entry>
  <id>yt:video:abc123</id>
  <yt:videoId>abc123</yt:videoId>
  <title>MAN UTD vs TOTTENHAM - HIGHLIGHTS</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=abc123"/>
  <author><name>K+ SPORTS</name></author>
  <published>2025-11-08T15:00:00+00:00</published>
  <updated>2025-11-08T16:00:00+00:00</updated>
  <media:group>
   <media:title>MAN UTD vs TOTTENHAM - HIGHLIGHTS</media:title>
   <media:thumbnail url="https://i.ytimg.com/vi/abc123/hqdefault.jpg" width="480" height="360"/>
   <media:community>
    <media:statistics views="123456"/>
   </media:community>
  </media:group>
 </entry>
 <entry>
  <id>yt:video:def456</id>
  <yt:videoId>def456</yt:videoId>
  <title>Arsenal vs Chelsea | Highlights</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=def456"/>
  <published>2025-11-08T13:00:00+00:00</published>
 </entry>
</feed>`

const channelFeedOneEntry = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
 <title>K+ SPORTS</title>
 <entry>
  <id>yt:video:only1</id>
  <title>Only video</title>
  <link rel="alternate" href="https://www.youtube.com/watch?v=only1"/>
  <published>2025-11-01T10:00:00+00:00</published>
 </entry>
</feed>`

const channelFeedEmpty = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
 <title>K+ SPORTS</title>
</feed>`

const channelFeedSparse = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
 <title>K+ SPORTS</title>
 <entry>
  <title>No id, no link, no date</title>
 </entry>
</feed>`

func TestRead_PreservesOrderAndFields(t *testing.T) {
	videos, err := Read([]byte(channelFeedTwoEntries))

	require.NoError(t, err)
	require.Len(t, videos, 2)

	first := videos[0]
	assert.Equal(t, "abc123", first.ID)
	assert.Equal(t, "MAN UTD vs TOTTENHAM - HIGHLIGHTS", first.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", first.Link)
	assert.True(t, first.Published.Equal(time.Date(2025, 11, 8, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "https://i.ytimg.com/vi/abc123/hqdefault.jpg", first.Thumbnail)
	assert.Equal(t, int64(123456), first.Views)
	assert.Equal(t, "K+ SPORTS", first.Channel)

	assert.Equal(t, "def456", videos[1].ID)
}

func TestRead_SingleEntry(t *testing.T) {
	videos, err := Read([]byte(channelFeedOneEntry))

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "only1", videos[0].ID)
}

func TestRead_NoEntries(t *testing.T) {
	videos, err := Read([]byte(channelFeedEmpty))

	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestRead_MissingFieldsAreEmpty(t *testing.T) {
	videos, err := Read([]byte(channelFeedSparse))

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "", videos[0].ID)
	assert.Equal(t, "", videos[0].Link)
	assert.True(t, videos[0].Published.IsZero())
	assert.Equal(t, "", videos[0].Thumbnail)
}

func TestRead_InvalidContent(t *testing.T) {
	_, err := Read([]byte(""))
	assert.Error(t, err)

	_, err = Read([]byte("this is not a feed"))
	assert.Error(t, err)
}

func TestNewFeedService_BuildsChannelURL(t *testing.T) {
	svc := NewFeedService(interfaces.Dependencies{}, "UC9xeuekJd88ku9LDcmGdUOA")
	assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?channel_id=UC9xeuekJd88ku9LDcmGdUOA", svc.FeedURL())
}

func TestFetchChannelVideos_Success(t *testing.T) {
	var cachedKey string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: channelFeedTwoEntries}, nil
		},
	}
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("key not found")
		},
		setFunc: func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			cachedKey = key
			return nil
		},
	}

	svc := NewFeedService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, "chan")
	videos := svc.FetchChannelVideos(context.Background())

	assert.Len(t, videos, 2)
	assert.Equal(t, "feed:"+svc.FeedURL(), cachedKey)
}

func TestFetchChannelVideos_UsesCache(t *testing.T) {
	client := &mockHTTPClient{}
	cache := &mockCache{
		getFunc: func(ctx context.Context, key string) ([]byte, error) {
			return []byte(channelFeedOneEntry), nil
		},
	}

	svc := NewFeedService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, "chan")
	videos := svc.FetchChannelVideos(context.Background())

	require.Len(t, videos, 1)
	assert.Equal(t, 0, client.calls, "cached payload should avoid the network")
}

func TestFetchChannelVideos_FailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name   string
		client *mockHTTPClient
	}{
		{
			name: "network error",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return nil, errors.New("network error")
			}},
		},
		{
			name: "non-200 status",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 404, body: "Not Found"}, nil
			}},
		},
		{
			name: "malformed payload",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 200, body: "<html></html>"}, nil
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			svc := NewFeedService(interfaces.Dependencies{HTTPClient: tt.client, Logger: logger}, "chan")

			videos := svc.FetchChannelVideos(context.Background())

			assert.NotNil(t, videos)
			assert.Empty(t, videos)
			assert.Len(t, logger.errors, 1)
		})
	}
}

func TestFetchChannelVideos_NoHTTPClient(t *testing.T) {
	svc := NewFeedService(interfaces.Dependencies{}, "chan")
	assert.Empty(t, svc.FetchChannelVideos(context.Background()))
}
