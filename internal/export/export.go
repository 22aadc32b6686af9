package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const baseName = "summary"

func (e *implExporter) Export(ctx context.Context, doc Document, dir string, formats []Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := filepath.Join(dir, baseName+"."+string(f))

		var err error
		switch f {
		case FormatText:
			err = WriteText(path, doc.Body)
		case FormatPDF:
			err = e.writePDF(path, doc)
		case FormatDOCX:
			err = e.writeDOCX(path, doc)
		default:
			err = fmt.Errorf("unsupported export format %q", f)
		}
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", f, err)
		}

		e.logger.Info(ctx, "Wrote %s", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteText writes body verbatim.
func WriteText(path, body string) error {
	return os.WriteFile(path, []byte(body), 0644)
}
