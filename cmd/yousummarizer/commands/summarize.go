package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/yousummarizer/internal/export"
	"github.com/nguyentantai21042004/yousummarizer/internal/processor"
)

var (
	summaryLang    string
	summaryMode    string
	summaryFormats []string
	summaryOut     string
	maxChunkChars  int
	showTranscript bool
)

// summarizeCmd summarizes a single video.
var summarizeCmd = &cobra.Command{
	Use:   "summarize <url|id>",
	Short: "Summarize a video",
	Long: `Summarize a video given a watch URL, a youtu.be link or a bare
11-character video ID.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVarP(&summaryLang, "lang", "l", "",
		"Summary language: en or hi (default from config)")
	summarizeCmd.Flags().StringVarP(&summaryMode, "mode", "m", "",
		"Sections to output: both, detailed or keypoints (default from config)")
	summarizeCmd.Flags().StringSliceVarP(&summaryFormats, "format", "f", nil,
		"Export formats: txt, pdf, docx (default from config)")
	summarizeCmd.Flags().StringVarP(&summaryOut, "out", "o", "",
		"Output directory (default <paths.output>/<video-id>)")
	summarizeCmd.Flags().IntVar(&maxChunkChars, "max-chunk-chars", 0,
		"Characters per summarization chunk (default from config)")
	summarizeCmd.Flags().BoolVar(&showTranscript, "show-transcript", false,
		"Print the transcript before the summary")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	return summarizeReference(cmd.Context(), args[0])
}

// summarizeReference runs the pipeline for ref and prints the result.
func summarizeReference(ctx context.Context, ref string) error {
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	var mode export.Mode
	if summaryMode != "" {
		if mode, err = export.ParseMode(summaryMode); err != nil {
			return err
		}
	}

	names := summaryFormats
	if names == nil {
		names = a.cfg.Export.Formats
	}
	formats, err := export.ParseFormats(names)
	if err != nil {
		return err
	}

	bar := newProgressBar(stageName(0))
	res, err := a.proc.Process(ctx, processor.Request{
		Reference:     ref,
		Language:      summaryLang,
		Mode:          mode,
		Formats:       formats,
		OutputDir:     summaryOut,
		MaxChunkChars: maxChunkChars,
		OnProgress: func(percent int) {
			bar.Describe(stageName(percent))
			bar.Set(percent)
		},
	})
	bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n%s\n\n", res.Video.Title, res.Video.Channel, res.Video.URL)
	if showTranscript {
		fmt.Printf("TRANSCRIPT (%s, %s):\n\n%s\n\n\n", res.Transcript.Source, res.Transcript.Language, res.Transcript.Text)
	}
	fmt.Print(res.Composed)

	if len(res.Files) > 0 {
		fmt.Fprintf(os.Stderr, "\nSaved: %s\n", strings.Join(res.Files, ", "))
	}
	return nil
}
