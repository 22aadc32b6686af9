package youtube

import (
	"context"
	"errors"
)

// ErrSearchDisabled is returned by Search when no API key is configured.
var ErrSearchDisabled = errors.New("video search disabled: no YouTube API key")

const (
	UnknownTitle   = "Unknown Title"
	UnknownChannel = "Unknown Channel"
)

// Video describes a single video.
type Video struct {
	ID        string
	Title     string
	Channel   string
	Thumbnail string
	URL       string
}

// Client looks videos up through the YouTube Data API.
type Client interface {
	// Search returns up to max videos matching query.
	Search(ctx context.Context, query string, max int) ([]Video, error)
	// Metadata describes the video with the given id. Lookup failures yield
	// UnknownTitle and UnknownChannel.
	Metadata(ctx context.Context, id string) Video
}
