package transcript

import (
	"github.com/nguyentantai21042004/yousummarizer/internal/audio"
	"github.com/nguyentantai21042004/yousummarizer/internal/captions"
	"github.com/nguyentantai21042004/yousummarizer/internal/llm"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

type implAcquirer struct {
	captions   captions.Fetcher
	downloader audio.Downloader
	generator  llm.Generator
	tempDir    string
	logger     logger.Logger
}

// New creates an Acquirer. tempDir is where per-request audio directories
// are created; empty means the system default.
func New(c captions.Fetcher, d audio.Downloader, g llm.Generator, tempDir string, log logger.Logger) Acquirer {
	return &implAcquirer{
		captions:   c,
		downloader: d,
		generator:  g,
		tempDir:    tempDir,
		logger:     log,
	}
}
