package processor

import (
	"context"

	"github.com/nguyentantai21042004/yousummarizer/internal/export"
	"github.com/nguyentantai21042004/yousummarizer/internal/summarizer"
	"github.com/nguyentantai21042004/yousummarizer/internal/transcript"
	"github.com/nguyentantai21042004/yousummarizer/internal/youtube"
)

// Processor turns video references into summaries.
type Processor interface {
	// Process runs one reference through transcript acquisition,
	// summarization and export.
	Process(ctx context.Context, req Request) (Result, error)
	// Transcript acquires the transcript only.
	Transcript(ctx context.Context, reference, language string) (youtube.Video, transcript.Transcript, error)
	// ProcessFile handles a request file dropped into the input folder.
	ProcessFile(ctx context.Context, path string) error
}

// Request describes one summarization run. Zero fields take the
// configured defaults.
type Request struct {
	Reference     string
	Language      string
	Mode          export.Mode
	Formats       []export.Format
	OutputDir     string
	MaxChunkChars int
	OnProgress    summarizer.ProgressFunc
}

// Result is everything produced for one request.
type Result struct {
	RequestID  string
	Video      youtube.Video
	Transcript transcript.Transcript
	Summary    summarizer.Summary
	Composed   string
	Files      []string
}
