package transcript

import (
	"context"
	"errors"
)

var (
	// ErrNoTranscriptAvailable means neither captions nor audio transcription
	// produced any text.
	ErrNoTranscriptAvailable = errors.New("no transcript available")
	// ErrAudioDownloadFailed means the audio fallback could not fetch the audio.
	ErrAudioDownloadFailed = errors.New("audio download failed")
)

// Source names the tier that produced a transcript.
type Source string

const (
	SourceCaptions      Source = "captions"
	SourceTranscription Source = "transcription"
)

// Transcript is the spoken text of a video.
type Transcript struct {
	Text     string
	Language string
	Source   Source
}

// Acquirer obtains a transcript for a video.
type Acquirer interface {
	// Acquire tries captions first and falls back to downloading and
	// transcribing the audio. onFallback, when set, runs just before the
	// audio fallback starts.
	Acquire(ctx context.Context, id, reference string, pref Preference, onFallback func()) (Transcript, error)
}
