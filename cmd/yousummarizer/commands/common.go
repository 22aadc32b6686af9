package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/yousummarizer/internal/audio"
	"github.com/nguyentantai21042004/yousummarizer/internal/captions"
	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/export"
	"github.com/nguyentantai21042004/yousummarizer/internal/llm"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
	"github.com/nguyentantai21042004/yousummarizer/internal/processor"
	"github.com/nguyentantai21042004/yousummarizer/internal/summarizer"
	"github.com/nguyentantai21042004/yousummarizer/internal/transcript"
	"github.com/nguyentantai21042004/yousummarizer/internal/videoid"
	"github.com/nguyentantai21042004/yousummarizer/internal/youtube"
	"github.com/nguyentantai21042004/yousummarizer/pkg/executor"
)

// app holds the wired dependencies shared by the subcommands.
type app struct {
	cfg    *config.Config
	log    logger.Logger
	proc   processor.Processor
	videos youtube.Client
}

// loadApp reads .env and the config file and wires every component.
func loadApp(ctx context.Context) (*app, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log := logger.NewWithOptions(logger.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Output: os.Stderr,
	})

	exec := executor.New()
	if _, err := exec.LookPath(cfg.YtDlp.BinaryPath); err != nil {
		log.Warn(ctx, "Audio fallback unavailable: %v", err)
	}

	gen := llm.New(cfg.Gemini, log)
	acq := transcript.New(
		captions.New(log, captions.Options{WatchURL: cfg.YouTube.WatchURL}),
		audio.New(cfg.YtDlp, exec, log),
		gen,
		cfg.Paths.Temp,
		log,
	)

	videos, err := youtube.New(ctx, cfg.YouTube, log)
	if err != nil {
		return nil, err
	}
	if cfg.YouTube.APIKey == "" {
		log.Info(ctx, "YT_API_KEY missing, search disabled")
	}

	proc := processor.New(
		cfg,
		acq,
		summarizer.New(gen, cfg.Performance.MaxConcurrent, log),
		videos,
		export.New(cfg.Export, log),
		log,
	)

	return &app{cfg: cfg, log: log, proc: proc, videos: videos}, nil
}

// userMessage maps pipeline errors to the messages shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, videoid.ErrInvalidReference):
		return "Provide a URL or choose from search."
	case errors.Is(err, transcript.ErrNoTranscriptAvailable):
		return "Unable to retrieve transcript."
	case errors.Is(err, summarizer.ErrEmptyInput):
		return "No spoken words detected."
	case errors.Is(err, youtube.ErrSearchDisabled):
		return "Search disabled: set YT_API_KEY to enable it."
	case errors.Is(err, llm.ErrNoAPIKeys):
		return "GEMINI_API_KEY missing."
	default:
		return err.Error()
	}
}
