package llm

import "context"

// Generator produces text from a prompt, optionally grounded on a file.
type Generator interface {
	Generate(ctx context.Context, prompt string, attachment *Attachment) (string, error)
}

// Attachment is a local file sent alongside a prompt.
type Attachment struct {
	Path     string
	MIMEType string
}
