package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

type implClient struct {
	service    *ytapi.Service
	maxResults int
	logger     logger.Logger
}

// New creates a Client. Without an API key the client still works, but
// Search reports ErrSearchDisabled and Metadata returns placeholders.
func New(ctx context.Context, cfg config.YouTubeConfig, log logger.Logger, opts ...option.ClientOption) (Client, error) {
	c := &implClient{
		maxResults: cfg.MaxResults,
		logger:     log,
	}
	if c.maxResults <= 0 {
		c.maxResults = 6
	}
	if cfg.APIKey == "" {
		return c, nil
	}

	svc, err := ytapi.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	c.service = svc
	return c, nil
}
