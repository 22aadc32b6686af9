package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	transcriptLang string
	transcriptOut  string
)

// transcriptCmd prints a video's transcript.
var transcriptCmd = &cobra.Command{
	Use:   "transcript <url|id>",
	Short: "Print a video's transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscript,
}

func init() {
	transcriptCmd.Flags().StringVarP(&transcriptLang, "lang", "l", "",
		"Preferred language: en or hi (default from config)")
	transcriptCmd.Flags().StringVarP(&transcriptOut, "output", "o", "",
		"Write the transcript to this file instead of stdout")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	video, tr, err := a.proc.Transcript(ctx, args[0], transcriptLang)
	if err != nil {
		return err
	}

	if transcriptOut != "" {
		if err := os.WriteFile(transcriptOut, []byte(tr.Text+"\n"), 0644); err != nil {
			return fmt.Errorf("write transcript: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved %s transcript of %q to %s\n", tr.Source, video.Title, transcriptOut)
		return nil
	}

	fmt.Println(tr.Text)
	return nil
}
