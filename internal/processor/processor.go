package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/yousummarizer/internal/export"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
	"github.com/nguyentantai21042004/yousummarizer/internal/summarizer"
	"github.com/nguyentantai21042004/yousummarizer/internal/transcript"
	"github.com/nguyentantai21042004/yousummarizer/internal/videoid"
	"github.com/nguyentantai21042004/yousummarizer/internal/youtube"
)

// Progress checkpoints reported around the pipeline stages.
const (
	progressCaptions  = 15
	progressAudio     = 35
	progressSummarize = 60
	progressCompleted = 100
)

// Process orchestrates the whole summarization pipeline
func (p *implProcessor) Process(ctx context.Context, req Request) (Result, error) {
	startTime := time.Now()
	res := Result{RequestID: uuid.NewString()}
	ctx = logger.WithRequestID(ctx, res.RequestID)

	if p.cfg.Performance.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Performance.RequestTimeout)
		defer cancel()
	}

	req, err := p.withDefaults(req)
	if err != nil {
		return res, err
	}
	progress := monotonic(req.OnProgress)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting summary: %s", req.Reference)
	p.logger.Info(ctx, "========================================")

	// Step 1: Resolve the video
	id, err := videoid.Parse(req.Reference)
	if err != nil {
		return res, fmt.Errorf("%q: %w", req.Reference, err)
	}
	res.Video = p.videos.Metadata(ctx, id)
	p.logger.Info(ctx, "Video: %s (%s)", res.Video.Title, res.Video.Channel)

	// Step 2: Acquire the transcript
	progress(progressCaptions)
	res.Transcript, err = p.acquirer.Acquire(ctx, id, req.Reference, transcript.PreferenceFor(req.Language), func() {
		progress(progressAudio)
	})
	if err != nil {
		return res, fmt.Errorf("acquire transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript from %s: %d chars", res.Transcript.Source, len(res.Transcript.Text))

	// Step 3: Summarize
	progress(progressSummarize)
	res.Summary, err = p.summarizer.Summarize(ctx, res.Transcript.Text, summarizer.Options{
		MaxChunkChars: req.MaxChunkChars,
		OnProgress:    summarizer.ProgressFunc(progress),
	})
	if err != nil {
		return res, fmt.Errorf("summarize: %w", err)
	}
	res.Composed = export.Compose(res.Summary, req.Mode)

	// Step 4: Export
	if len(req.Formats) > 0 {
		dir := req.OutputDir
		if dir == "" {
			dir = filepath.Join(p.cfg.Paths.Output, id)
		}
		res.Files, err = p.exporter.Export(ctx, export.Document{Title: res.Video.Title, Body: res.Composed}, dir, req.Formats)
		if err != nil {
			return res, fmt.Errorf("export: %w", err)
		}
	}

	progress(progressCompleted)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Summary completed successfully!")
	for _, f := range res.Files {
		p.logger.Info(ctx, "Output: %s", f)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return res, nil
}

func (p *implProcessor) Transcript(ctx context.Context, reference, language string) (youtube.Video, transcript.Transcript, error) {
	ctx = logger.WithRequestID(ctx, uuid.NewString())
	if language == "" {
		language = p.cfg.Summary.Language
	}

	id, err := videoid.Parse(reference)
	if err != nil {
		return youtube.Video{}, transcript.Transcript{}, fmt.Errorf("%q: %w", reference, err)
	}

	video := p.videos.Metadata(ctx, id)
	tr, err := p.acquirer.Acquire(ctx, id, reference, transcript.PreferenceFor(language), nil)
	if err != nil {
		return video, transcript.Transcript{}, fmt.Errorf("acquire transcript: %w", err)
	}
	return video, tr, nil
}

func (p *implProcessor) withDefaults(req Request) (Request, error) {
	if req.Language == "" {
		req.Language = p.cfg.Summary.Language
	}
	if req.Mode == "" {
		mode, err := export.ParseMode(p.cfg.Summary.Mode)
		if err != nil {
			return req, err
		}
		req.Mode = mode
	}
	if req.MaxChunkChars == 0 {
		req.MaxChunkChars = p.cfg.Summary.MaxChunkChars
	}
	return req, nil
}

// monotonic serialises progress reports and drops any that would move
// the bar backwards or repeat a value.
func monotonic(fn summarizer.ProgressFunc) func(int) {
	if fn == nil {
		return func(int) {}
	}
	var (
		mu   sync.Mutex
		last = -1
	)
	return func(percent int) {
		mu.Lock()
		defer mu.Unlock()
		if percent <= last {
			return
		}
		last = percent
		fn(percent)
	}
}
