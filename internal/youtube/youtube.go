package youtube

import (
	"context"
	"fmt"
	"strings"

	ytapi "google.golang.org/api/youtube/v3"

	"github.com/nguyentantai21042004/yousummarizer/internal/videoid"
)

func (c *implClient) Search(ctx context.Context, query string, max int) ([]Video, error) {
	if c.service == nil {
		return nil, ErrSearchDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if max <= 0 {
		max = c.maxResults
	}

	resp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(int64(max)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		v := Video{
			ID:      item.Id.VideoId,
			Title:   UnknownTitle,
			Channel: UnknownChannel,
			URL:     videoid.WatchURL(item.Id.VideoId),
		}
		if s := item.Snippet; s != nil {
			v.Title = orDefault(s.Title, UnknownTitle)
			v.Channel = orDefault(s.ChannelTitle, UnknownChannel)
			v.Thumbnail = thumbnail(s.Thumbnails, false)
		}
		videos = append(videos, v)
	}

	c.logger.Debug(ctx, "Search %q returned %d videos", query, len(videos))
	return videos, nil
}

func (c *implClient) Metadata(ctx context.Context, id string) Video {
	v := Video{
		ID:      id,
		Title:   UnknownTitle,
		Channel: UnknownChannel,
		URL:     videoid.WatchURL(id),
	}
	if c.service == nil {
		return v
	}

	resp, err := c.service.Videos.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		c.logger.Warn(ctx, "Metadata lookup failed for %s: %v", id, err)
		return v
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return v
	}

	s := resp.Items[0].Snippet
	v.Title = orDefault(s.Title, UnknownTitle)
	v.Channel = orDefault(s.ChannelTitle, UnknownChannel)
	v.Thumbnail = thumbnail(s.Thumbnails, true)
	return v
}

// thumbnail picks the medium image for search rows and the high one for
// the selected video.
func thumbnail(t *ytapi.ThumbnailDetails, high bool) string {
	if t == nil {
		return ""
	}
	if high && t.High != nil {
		return t.High.Url
	}
	if !high && t.Medium != nil {
		return t.Medium.Url
	}
	if t.Default != nil {
		return t.Default.Url
	}
	return ""
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
