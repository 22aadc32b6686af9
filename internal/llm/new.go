package llm

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

type implClient struct {
	apiKeys    []string
	model      string
	audioModel string
	timeout    time.Duration
	limiter    *rate.Limiter
	logger     logger.Logger

	mu         sync.Mutex
	currentKey int
	backends   map[string]backend
	newBackend func(ctx context.Context, apiKey string) (backend, error)

	pollInterval time.Duration
}

// New creates a Gemini Generator that rotates through the configured API
// keys and paces requests to RequestsPerMinute.
func New(cfg config.GeminiConfig, log logger.Logger) Generator {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	audioModel := cfg.AudioModel
	if audioModel == "" {
		audioModel = cfg.Model
	}
	return &implClient{
		apiKeys:      cfg.APIKeys,
		model:        cfg.Model,
		audioModel:   audioModel,
		timeout:      cfg.Timeout,
		limiter:      rate.NewLimiter(limit, 1),
		logger:       log,
		backends:     make(map[string]backend),
		newBackend:   newGenAIBackend,
		pollInterval: 2 * time.Second,
	}
}
