package audio

import "context"

// Downloader fetches the audio track of a video.
type Downloader interface {
	// DownloadBestAudio saves the best available audio of reference into dir
	// and returns the path of the resulting file.
	DownloadBestAudio(ctx context.Context, reference, dir string) (string, error)
}
