package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/yousummarizer/internal/chunker"
)

const (
	// DefaultMaxChunkChars is the chunk bound used when Options leaves it zero.
	DefaultMaxChunkChars = 15000

	minInputChars = 10

	chunkPrompt    = "Provide a detailed explanation and then bullet points:\n\n"
	detailedPrompt = "Combine into a detailed explanation:\n\n"
	keyPointPrompt = "Provide bullet points using • bullets:\n\n"

	// Chunk passes report progress between these two values.
	progressStart = 60
	progressSpan  = 35
)

// Summarize splits text into chunks, summarizes each, then condenses the
// concatenated chunk summaries twice: once into a narrative and once into
// bullets. It makes exactly len(chunks)+2 generation calls and fails as a
// whole if any of them fails.
func (s *implSummarizer) Summarize(ctx context.Context, text string, opts Options) (Summary, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minInputChars {
		return Summary{}, ErrEmptyInput
	}

	maxChars := opts.MaxChunkChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}
	report := opts.OnProgress
	if report == nil {
		report = func(int) {}
	}

	chunks := chunker.Split(text, maxChars)
	s.logger.Info(ctx, "Summarizing %d chars in %d chunks", len(text), len(chunks))

	partials, err := s.summarizeChunks(ctx, chunks, report)
	if err != nil {
		return Summary{}, err
	}
	combined := strings.Join(partials, "\n\n")

	var summary Summary
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	g.Go(func() error {
		out, err := s.generator.Generate(gctx, detailedPrompt+combined, nil)
		if err != nil {
			return fmt.Errorf("%w: detailed pass: %w", ErrSummarizationFailed, err)
		}
		summary.Detailed = out
		return nil
	})
	g.Go(func() error {
		out, err := s.generator.Generate(gctx, keyPointPrompt+combined, nil)
		if err != nil {
			return fmt.Errorf("%w: key points pass: %w", ErrSummarizationFailed, err)
		}
		summary.KeyPoints = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	report(100)
	s.logger.Info(ctx, "Summary complete: %d chunk calls + 2 final calls", len(chunks))
	return summary, nil
}

// summarizeChunks runs one call per chunk and returns the results in chunk
// order regardless of completion order.
func (s *implSummarizer) summarizeChunks(ctx context.Context, chunks []chunker.Chunk, report ProgressFunc) ([]string, error) {
	results := make([]string, len(chunks))

	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for _, c := range chunks {
		g.Go(func() error {
			out, err := s.generator.Generate(gctx, chunkPrompt+c.Text, nil)
			if err != nil {
				return fmt.Errorf("%w: chunk %d: %w", ErrSummarizationFailed, c.Index, err)
			}
			results[c.Index] = out

			mu.Lock()
			completed++
			done := completed
			report(progressStart + progressSpan*done/len(chunks))
			mu.Unlock()

			s.logger.Debug(ctx, "[%d/%d] chunk %d summarized", done, len(chunks), c.Index)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
