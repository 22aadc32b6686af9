package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/yousummarizer/internal/config"
	"github.com/nguyentantai21042004/yousummarizer/internal/logger"
)

type fakeBackend struct {
	key string

	mu        sync.Mutex
	genErr    error
	reply     string
	models    []string
	contents  [][]*genai.Content
	uploads   []string
	states    []genai.FileState
	deleted   []string
	pollCalls int
}

func (f *fakeBackend) generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models = append(f.models, model)
	f.contents = append(f.contents, contents)
	if f.genErr != nil {
		return "", f.genErr
	}
	return f.reply, nil
}

func (f *fakeBackend) upload(ctx context.Context, path, mimeType string) (*genai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, path)
	return &genai.File{Name: "files/abc", URI: "https://files/abc", MIMEType: mimeType, State: genai.FileStateProcessing}, nil
}

func (f *fakeBackend) file(ctx context.Context, name string) (*genai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := genai.FileStateActive
	if f.pollCalls < len(f.states) {
		state = f.states[f.pollCalls]
	}
	f.pollCalls++
	return &genai.File{Name: name, URI: "https://files/abc", State: state}, nil
}

func (f *fakeBackend) deleteFile(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, name)
	return nil
}

func newTestClient(keys []string, backends map[string]*fakeBackend) *implClient {
	c := New(config.GeminiConfig{
		APIKeys: keys,
		Model:   "text-model",
	}, logger.Discard()).(*implClient)
	c.pollInterval = time.Millisecond
	c.newBackend = func(ctx context.Context, key string) (backend, error) {
		b, ok := backends[key]
		if !ok {
			return nil, errors.New("unknown key")
		}
		return b, nil
	}
	return c
}

func TestGenerateText(t *testing.T) {
	b := &fakeBackend{reply: "summary"}
	c := newTestClient([]string{"k1"}, map[string]*fakeBackend{"k1": b})

	got, err := c.Generate(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "summary", got)
	assert.Equal(t, []string{"text-model"}, b.models)
	require.Len(t, b.contents, 1)
	assert.Equal(t, "hello", b.contents[0][0].Parts[0].Text)
}

func TestGenerateRotatesOnQuota(t *testing.T) {
	b1 := &fakeBackend{genErr: errors.New("Error 429, RESOURCE_EXHAUSTED")}
	b2 := &fakeBackend{reply: "ok"}
	c := newTestClient([]string{"k1", "k2"}, map[string]*fakeBackend{"k1": b1, "k2": b2})

	got, err := c.Generate(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, c.currentKey)

	// The next call starts on the key that worked.
	_, err = c.Generate(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.Len(t, b1.models, 1)
	assert.Len(t, b2.models, 2)
}

func TestGenerateAllKeysExhausted(t *testing.T) {
	quota := errors.New("quota exceeded")
	c := newTestClient([]string{"k1", "k2"}, map[string]*fakeBackend{
		"k1": {genErr: quota},
		"k2": {genErr: quota},
	})

	_, err := c.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, quota)
}

func TestGenerateNonQuotaErrorStops(t *testing.T) {
	b1 := &fakeBackend{genErr: errors.New("invalid argument")}
	b2 := &fakeBackend{reply: "ok"}
	c := newTestClient([]string{"k1", "k2"}, map[string]*fakeBackend{"k1": b1, "k2": b2})

	_, err := c.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	assert.Empty(t, b2.models)
}

func TestGenerateNoKeys(t *testing.T) {
	c := newTestClient(nil, nil)
	_, err := c.Generate(context.Background(), "p", nil)
	assert.ErrorIs(t, err, ErrNoAPIKeys)
}

func TestGenerateWithAttachment(t *testing.T) {
	b := &fakeBackend{
		reply:  "transcribed",
		states: []genai.FileState{genai.FileStateProcessing, genai.FileStateActive},
	}
	c := newTestClient([]string{"k1"}, map[string]*fakeBackend{"k1": b})
	c.audioModel = "audio-model"

	got, err := c.Generate(context.Background(), "Transcribe this audio to text in English.",
		&Attachment{Path: "/tmp/audio.mp3", MIMEType: "audio/mp3"})
	require.NoError(t, err)
	assert.Equal(t, "transcribed", got)

	assert.Equal(t, []string{"/tmp/audio.mp3"}, b.uploads)
	assert.Equal(t, 2, b.pollCalls)
	assert.Equal(t, []string{"files/abc"}, b.deleted)
	assert.Equal(t, []string{"audio-model"}, b.models)

	parts := b.contents[0][0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].FileData)
	assert.Equal(t, "https://files/abc", parts[0].FileData.FileURI)
	assert.Equal(t, "audio/mp3", parts[0].FileData.MIMEType)
	assert.Equal(t, "Transcribe this audio to text in English.", parts[1].Text)
}

func TestGenerateAttachmentFailedProcessing(t *testing.T) {
	b := &fakeBackend{states: []genai.FileState{genai.FileStateFailed}}
	c := newTestClient([]string{"k1"}, map[string]*fakeBackend{"k1": b})

	_, err := c.Generate(context.Background(), "p", &Attachment{Path: "a.mp3", MIMEType: "audio/mp3"})
	require.Error(t, err)
	assert.Empty(t, b.models)
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429: too many requests"), true},
		{errors.New("quota exceeded for project"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("invalid API key"), false},
	}
	for _, tt := range tests {
		if got := isQuotaError(tt.err); got != tt.want {
			t.Errorf("isQuotaError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestRotateKeyOnce(t *testing.T) {
	c := newTestClient([]string{"k1", "k2", "k3"}, nil)
	c.rotateKey(0)
	c.rotateKey(0)
	assert.Equal(t, 1, c.currentKey)
}
