package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// backend is the slice of the Gemini API the client needs.
type backend interface {
	generate(ctx context.Context, model string, contents []*genai.Content) (string, error)
	upload(ctx context.Context, path, mimeType string) (*genai.File, error)
	file(ctx context.Context, name string) (*genai.File, error)
	deleteFile(ctx context.Context, name string) error
}

type genaiBackend struct {
	client *genai.Client
}

func newGenAIBackend(ctx context.Context, apiKey string) (backend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &genaiBackend{client: client}, nil
}

func (b *genaiBackend) generate(ctx context.Context, model string, contents []*genai.Content) (string, error) {
	result, err := b.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (b *genaiBackend) upload(ctx context.Context, path, mimeType string) (*genai.File, error) {
	return b.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{MIMEType: mimeType})
}

func (b *genaiBackend) file(ctx context.Context, name string) (*genai.File, error) {
	return b.client.Files.Get(ctx, name, nil)
}

func (b *genaiBackend) deleteFile(ctx context.Context, name string) error {
	_, err := b.client.Files.Delete(ctx, name, nil)
	return err
}
