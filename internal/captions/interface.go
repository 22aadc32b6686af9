package captions

import (
	"context"
	"errors"
)

// ErrNoCaptions means the video has no caption track in any of the
// requested languages. Retrying will not help.
var ErrNoCaptions = errors.New("no captions available")

// Fetcher retrieves the caption segments of a video.
type Fetcher interface {
	// FetchCaptions returns the segments of the first track matching langs,
	// in time order.
	FetchCaptions(ctx context.Context, id string, langs []string) ([]Segment, error)
}

// Segment is one timed caption line.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
	Language string
}

// IsUnavailable reports whether err means the captions do not exist, as
// opposed to a transient failure fetching them.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrNoCaptions)
}
