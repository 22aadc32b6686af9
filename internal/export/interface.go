package export

import (
	"context"
	"fmt"
)

// Format is an output file type.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormats validates a list of format names.
func ParseFormats(names []string) ([]Format, error) {
	formats := make([]Format, 0, len(names))
	for _, n := range names {
		switch f := Format(n); f {
		case FormatText, FormatPDF, FormatDOCX:
			formats = append(formats, f)
		default:
			return nil, fmt.Errorf("unsupported export format %q", n)
		}
	}
	return formats, nil
}

// Document is what gets exported: a title and the composed summary text.
type Document struct {
	Title string
	Body  string
}

// Exporter writes a Document to files.
type Exporter interface {
	// Export writes doc into dir once per format and returns the file paths
	// in the same order.
	Export(ctx context.Context, doc Document, dir string, formats []Format) ([]string, error)
}
