package summarizer

import (
	"github.com/nguyentantai21042004/yousummarizer/internal/llm"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

type implSummarizer struct {
	generator     llm.Generator
	maxConcurrent int
	logger        logger.Logger
}

// New creates a Summarizer that runs at most maxConcurrent generation
// calls at once.
func New(g llm.Generator, maxConcurrent int, log logger.Logger) Summarizer {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implSummarizer{
		generator:     g,
		maxConcurrent: maxConcurrent,
		logger:        log,
	}
}
