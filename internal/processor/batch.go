package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/yousummarizer/internal/export"
)

// ProcessFile summarizes every reference listed in a request file, one per
// line, then moves the file to the archived folder. Blank lines and lines
// starting with '#' are skipped.
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	refs, err := readReferences(path)
	if err != nil {
		return fmt.Errorf("read request file: %w", err)
	}
	p.logger.Info(ctx, "Request file %s: %d references", filepath.Base(path), len(refs))

	formats, err := export.ParseFormats(p.cfg.Export.Formats)
	if err != nil {
		return err
	}

	var errs []error
	for i, ref := range refs {
		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(refs), ref)
		if _, err := p.Process(ctx, Request{Reference: ref, Formats: formats}); err != nil {
			p.logger.Error(ctx, "Failed to summarize %s: %v", ref, err)
			errs = append(errs, fmt.Errorf("%s: %w", ref, err))
		}
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move request file to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Request file complete: %d success, %d failed", len(refs)-len(errs), len(errs))
	return errors.Join(errs...)
}

func readReferences(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var refs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		refs = append(refs, line)
	}
	return refs, scanner.Err()
}

// moveToArchived moves a handled request file out of the input folder
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, destPath)

	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
