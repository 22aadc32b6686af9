package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/yousummarizer/internal/llm"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

// fakeGenerator answers chunk prompts with "S(<chunk>)" and final prompts
// with a tag plus the combined input.
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	hook    func(prompt string) error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, attachment *llm.Attachment) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	hook := f.hook
	f.mu.Unlock()

	if hook != nil {
		if err := hook(prompt); err != nil {
			return "", err
		}
	}

	switch {
	case strings.HasPrefix(prompt, chunkPrompt):
		return "S(" + strings.TrimPrefix(prompt, chunkPrompt) + ")", nil
	case strings.HasPrefix(prompt, detailedPrompt):
		return "DETAILED[" + strings.TrimPrefix(prompt, detailedPrompt) + "]", nil
	case strings.HasPrefix(prompt, keyPointPrompt):
		return "POINTS[" + strings.TrimPrefix(prompt, keyPointPrompt) + "]", nil
	}
	return "", errors.New("unexpected prompt")
}

func (f *fakeGenerator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type progressRecorder struct {
	mu     sync.Mutex
	values []int
}

func (p *progressRecorder) record(v int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = append(p.values, v)
}

func TestSummarize(t *testing.T) {
	gen := &fakeGenerator{}
	s := New(gen, 2, logger.Discard())
	progress := &progressRecorder{}

	text := strings.Repeat("a", 10) + strings.Repeat("b", 10) + strings.Repeat("c", 5)
	got, err := s.Summarize(context.Background(), text, Options{MaxChunkChars: 10, OnProgress: progress.record})
	require.NoError(t, err)

	combined := "S(aaaaaaaaaa)\n\nS(bbbbbbbbbb)\n\nS(ccccc)"
	assert.Equal(t, "DETAILED["+combined+"]", got.Detailed)
	assert.Equal(t, "POINTS["+combined+"]", got.KeyPoints)
	assert.Equal(t, 5, gen.count())
	assert.Equal(t, []int{71, 83, 95, 100}, progress.values)
}

func TestSummarizeSingleChunk(t *testing.T) {
	gen := &fakeGenerator{}
	progress := &progressRecorder{}

	got, err := New(gen, 2, logger.Discard()).Summarize(context.Background(), "a short but valid transcript", Options{OnProgress: progress.record})
	require.NoError(t, err)
	assert.Equal(t, "DETAILED[S(a short but valid transcript)]", got.Detailed)
	assert.Equal(t, 3, gen.count())
	assert.Equal(t, []int{95, 100}, progress.values)
}

func TestSummarizeKeepsChunkOrder(t *testing.T) {
	// The first chunk finishes last.
	release := make(chan struct{})
	var others sync.WaitGroup
	others.Add(2)

	gen := &fakeGenerator{hook: func(prompt string) error {
		switch {
		case strings.Contains(prompt, "aaaa") && strings.HasPrefix(prompt, chunkPrompt):
			<-release
		case strings.HasPrefix(prompt, chunkPrompt):
			defer others.Done()
		}
		return nil
	}}
	go func() {
		others.Wait()
		close(release)
	}()

	text := strings.Repeat("a", 10) + strings.Repeat("b", 10) + strings.Repeat("c", 10)
	got, err := New(gen, 3, logger.Discard()).Summarize(context.Background(), text, Options{MaxChunkChars: 10})
	require.NoError(t, err)
	assert.Equal(t, "DETAILED[S(aaaaaaaaaa)\n\nS(bbbbbbbbbb)\n\nS(cccccccccc)]", got.Detailed)
}

func TestSummarizeEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t "},
		{"too short", "  short  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			_, err := New(gen, 2, logger.Discard()).Summarize(context.Background(), tt.text, Options{})
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Zero(t, gen.count())
		})
	}
}

func TestSummarizeFailure(t *testing.T) {
	boom := errors.New("model unavailable")

	tests := []struct {
		name   string
		failOn string
	}{
		{"chunk call fails", chunkPrompt + "bbbb"},
		{"detailed call fails", detailedPrompt},
		{"key points call fails", keyPointPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{hook: func(prompt string) error {
				if strings.HasPrefix(prompt, tt.failOn) {
					return boom
				}
				return nil
			}}

			text := strings.Repeat("a", 10) + strings.Repeat("b", 10)
			got, err := New(gen, 2, logger.Discard()).Summarize(context.Background(), text, Options{MaxChunkChars: 10})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSummarizationFailed)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, Summary{}, got)
		})
	}
}

func TestSummarizeRespectsConcurrencyLimit(t *testing.T) {
	for _, limit := range []int{1, 2, 3} {
		t.Run(fmt.Sprintf("limit %d", limit), func(t *testing.T) {
			var (
				mu      sync.Mutex
				running int
				peak    int
			)
			gen := &fakeGenerator{hook: func(string) error {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()

				time.Sleep(20 * time.Millisecond)

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			}}

			text := strings.Repeat("x", 100)
			_, err := New(gen, limit, logger.Discard()).Summarize(context.Background(), text, Options{MaxChunkChars: 10})
			require.NoError(t, err)
			assert.Equal(t, limit, peak)
			assert.Equal(t, 12, gen.count())
		})
	}
}
