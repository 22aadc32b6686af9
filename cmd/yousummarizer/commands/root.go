package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/yousummarizer/internal/config"
)

var (
	// configPath is the YAML config file.
	configPath string

	// verbose forces debug logging.
	verbose bool
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "yousummarizer",
	Short: "Summarize YouTube videos with Gemini",
	Long: `yousummarizer fetches the transcript of a YouTube video, falling back to
downloading and transcribing the audio when no captions exist, and turns it
into a detailed summary plus a bullet-point digest.

Summaries can be exported as TXT, PDF and DOCX.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", config.DefaultPath,
		"Path to the YAML config file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable debug logging",
	)

	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(watchCmd)
}
