package commands

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// newProgressBar renders pipeline percentages on stderr.
func newProgressBar(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// stageName describes what the pipeline is doing at a given percentage.
func stageName(percent int) string {
	switch {
	case percent < 35:
		return "Fetching transcript"
	case percent < 60:
		return "Transcribing audio"
	case percent < 95:
		return "Summarizing chunks"
	case percent < 100:
		return "Combining summary"
	default:
		return "Completed"
	}
}
