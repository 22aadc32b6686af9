package captions

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

const (
	defaultWatchURL  = "https://www.youtube.com/watch"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// Options configures the caption client.
type Options struct {
	WatchURL   string
	UserAgent  string
	HTTPClient *http.Client
}

type implFetcher struct {
	l          logger.Logger
	watchURL   string
	userAgent  string
	httpClient *http.Client
}

// New creates a Fetcher that scrapes caption tracks from the watch page.
func New(l logger.Logger, opts Options) Fetcher {
	if opts.WatchURL == "" {
		opts.WatchURL = defaultWatchURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &implFetcher{
		l:          l,
		watchURL:   opts.WatchURL,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
	}
}
