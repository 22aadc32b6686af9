package export

import (
	"fmt"

	"github.com/nguyentantai21042004/yousummarizer/internal/summarizer"
)

// Mode selects which summary sections are emitted.
type Mode string

const (
	ModeBoth      Mode = "both"
	ModeDetailed  Mode = "detailed"
	ModeKeyPoints Mode = "keypoints"
)

const (
	detailedHeading  = "DETAILED SUMMARY:"
	keyPointsHeading = "KEY POINTS SUMMARY:"
)

// ParseMode accepts "both", "detailed" or "keypoints"; empty means both.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeBoth, nil
	case ModeBoth, ModeDetailed, ModeKeyPoints:
		return m, nil
	default:
		return "", fmt.Errorf("unknown summary mode %q", s)
	}
}

// Compose renders the sections selected by mode as plain text.
func Compose(s summarizer.Summary, mode Mode) string {
	var out string
	if mode != ModeKeyPoints {
		out += detailedHeading + "\n\n" + s.Detailed + "\n\n\n"
	}
	if mode != ModeDetailed {
		out += keyPointsHeading + "\n\n" + s.KeyPoints + "\n"
	}
	return out
}
