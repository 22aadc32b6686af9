package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// ErrNoAPIKeys is returned when the client has no key to call the API with.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

// Generate sends prompt, plus the attachment when given, and returns the
// model's text. Rotates API keys on 429 / quota errors.
func (c *implClient) Generate(ctx context.Context, prompt string, attachment *Attachment) (string, error) {
	if len(c.apiKeys) == 0 {
		return "", ErrNoAPIKeys
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}

		keyIdx, b, err := c.backend(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey(keyIdx)
			continue
		}

		text, err := c.generateWith(ctx, b, prompt, attachment)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				c.rotateKey(keyIdx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implClient) generateWith(ctx context.Context, b backend, prompt string, attachment *Attachment) (string, error) {
	if attachment == nil {
		return b.generate(ctx, c.model, genai.Text(prompt))
	}

	file, err := c.uploadAndWait(ctx, b, attachment)
	if err != nil {
		return "", err
	}
	defer func() {
		// The request context may already be done; deletion is best effort.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := b.deleteFile(delCtx, file.Name); err != nil {
			c.logger.Warn(ctx, "Failed to delete uploaded file %s: %v", file.Name, err)
		}
	}()

	parts := []*genai.Part{
		genai.NewPartFromURI(file.URI, file.MIMEType),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return b.generate(ctx, c.audioModel, contents)
}

func (c *implClient) uploadAndWait(ctx context.Context, b backend, attachment *Attachment) (*genai.File, error) {
	c.logger.Info(ctx, "Uploading %s", attachment.Path)

	file, err := b.upload(ctx, attachment.Path, attachment.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", attachment.Path, err)
	}
	if file.MIMEType == "" {
		file.MIMEType = attachment.MIMEType
	}

	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		refreshed, err := b.file(ctx, file.Name)
		if err != nil {
			return nil, fmt.Errorf("poll uploaded file: %w", err)
		}
		if refreshed.MIMEType == "" {
			refreshed.MIMEType = file.MIMEType
		}
		file = refreshed
	}

	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("uploaded file %s failed processing", file.Name)
	}
	return file, nil
}

// backend returns the client for the current key, creating it on first use.
func (c *implClient) backend(ctx context.Context) (int, backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.currentKey
	key := c.apiKeys[idx]
	if b, ok := c.backends[key]; ok {
		return idx, b, nil
	}

	b, err := c.newBackend(ctx, key)
	if err != nil {
		return idx, nil, err
	}
	c.backends[key] = b
	return idx, b, nil
}

// rotateKey moves off key idx. Concurrent callers that hit the same
// exhausted key only advance the index once.
func (c *implClient) rotateKey(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentKey == idx {
		c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
	}
}

func isQuotaError(err error) bool {
	errMsg := err.Error()
	return strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED")
}
