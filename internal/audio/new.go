package audio

import (
	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
	"github.com/nguyentantai21042004/yousummarizer/pkg/executor"
)

type implDownloader struct {
	cfg      config.YtDlpConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by yt-dlp
func New(cfg config.YtDlpConfig, exec executor.Executor, log logger.Logger) Downloader {
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "yt-dlp"
	}
	if cfg.AudioFormat == "" {
		cfg.AudioFormat = "mp3"
	}
	if cfg.AudioQuality == "" {
		cfg.AudioQuality = "128K"
	}
	return &implDownloader{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
