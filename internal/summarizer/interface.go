package summarizer

import (
	"context"
	"errors"
)

var (
	// ErrEmptyInput means the transcript has too little text to summarize.
	ErrEmptyInput = errors.New("transcript too short to summarize")
	// ErrSummarizationFailed wraps the first failed generation call.
	ErrSummarizationFailed = errors.New("summarization failed")
)

// Summary is the two-part result of a summarization run.
type Summary struct {
	Detailed  string
	KeyPoints string
}

// ProgressFunc receives a completion percentage.
type ProgressFunc func(percent int)

// Options tunes a single Summarize call.
type Options struct {
	// MaxChunkChars bounds each chunk; zero means DefaultMaxChunkChars.
	MaxChunkChars int
	OnProgress    ProgressFunc
}

// Summarizer condenses a transcript into a detailed narrative and key points.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts Options) (Summary, error)
}
