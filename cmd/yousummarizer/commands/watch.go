package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/watcher"
)

// watchCmd runs the batch mode.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Summarize request files dropped into the input folder",
	Long: `Watch paths.input for .txt and .url files. Each non-empty line that does
not start with '#' is a video reference. Summaries are written to
paths.output/<video-id>/ and the request file is moved to paths.archived.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	// Verify required directories exist
	if err := ensureDirectories(a.cfg); err != nil {
		return err
	}

	w, err := watcher.New(a.cfg.Paths.Input, a.proc.ProcessFile, a.log, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "YouTube summarizer is ready!")
	a.log.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.log.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.log.Info(ctx, "Model: %s, %d API key(s)", a.cfg.Gemini.Model, len(a.cfg.Gemini.APIKeys))
	a.log.Info(ctx, "Press Ctrl+C to stop")
	a.log.Info(ctx, "========================================")

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		a.log.Info(ctx, "Shutdown signal received")
		return nil
	}
	return err
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
