package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/yousummarizer/internal/audio"
	"github.com/nguyentantai21042004/yousummarizer/internal/captions"
	"github.com/nguyentantai21042004/yousummarizer/internal/llm"
	"github.com/nguyentantai21042004/yousummarizer/internal/videoid"
)

func (a *implAcquirer) Acquire(ctx context.Context, id, reference string, pref Preference, onFallback func()) (Transcript, error) {
	if text, lang, ok := a.fromCaptions(ctx, id, pref); ok {
		return Transcript{Text: text, Language: lang, Source: SourceCaptions}, nil
	}

	if onFallback != nil {
		onFallback()
	}

	text, err := a.fromAudio(ctx, id, reference, pref.Primary)
	if err != nil {
		return Transcript{}, fmt.Errorf("%w: %w", ErrNoTranscriptAvailable, err)
	}
	return Transcript{Text: text, Language: pref.Primary.Code, Source: SourceTranscription}, nil
}

// fromCaptions never fails: every error is logged and reported as no result.
func (a *implAcquirer) fromCaptions(ctx context.Context, id string, pref Preference) (string, string, bool) {
	segments, err := a.captions.FetchCaptions(ctx, id, pref.Codes())
	if err != nil {
		if captions.IsUnavailable(err) {
			a.logger.Info(ctx, "No captions for %s: %v", id, err)
		} else {
			a.logger.Warn(ctx, "Caption fetch failed for %s: %v", id, err)
		}
		return "", "", false
	}

	text := captions.JoinText(segments)
	if strings.TrimSpace(text) == "" {
		a.logger.Info(ctx, "Captions for %s are blank", id)
		return "", "", false
	}
	lang := segments[0].Language
	if lang == "" {
		lang = pref.Primary.Code
	}
	a.logger.Info(ctx, "Got %s captions for %s (%d segments)", lang, id, len(segments))
	return text, lang, true
}

func (a *implAcquirer) fromAudio(ctx context.Context, id, reference string, lang Language) (string, error) {
	if a.tempDir != "" {
		if err := os.MkdirAll(a.tempDir, 0755); err != nil {
			return "", fmt.Errorf("create temp root: %w", err)
		}
	}
	dir, err := os.MkdirTemp(a.tempDir, "yousummarizer-audio-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			a.logger.Warn(ctx, "Failed to remove %s: %v", dir, err)
		}
	}()

	if videoid.IsBareID(reference) {
		reference = videoid.WatchURL(id)
	}

	path, err := a.downloader.DownloadBestAudio(ctx, reference, dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioDownloadFailed, err)
	}

	prompt := fmt.Sprintf("Transcribe this audio to text in %s.", lang.Name)
	text, err := a.generator.Generate(ctx, prompt, &llm.Attachment{Path: path, MIMEType: audio.MIMEType(path)})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("transcription returned no text")
	}

	a.logger.Info(ctx, "Transcribed audio for %s (%d chars)", id, len(text))
	return text, nil
}
