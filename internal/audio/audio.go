package audio

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

func (d *implDownloader) DownloadBestAudio(ctx context.Context, reference, dir string) (string, error) {
	audioPath := filepath.Join(dir, "audio."+d.cfg.AudioFormat)

	d.logger.Info(ctx, "Downloading audio: %s", reference)

	// -f bestaudio/best: best audio-only stream, else best muxed stream
	// -x --audio-format: extract and transcode with ffmpeg
	// -o: fixed name relative to dir so the caller knows where to look
	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", d.cfg.AudioFormat,
		"--audio-quality", d.cfg.AudioQuality,
		"-o", "audio.%(ext)s",
		"--quiet",
		"--no-playlist",
		reference,
	}

	if _, err := d.executor.ExecuteInDir(ctx, dir, d.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download audio: %w", err)
	}

	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("yt-dlp produced no audio file: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("yt-dlp produced an empty audio file: %s", audioPath)
	}

	d.logger.Info(ctx, "Audio downloaded successfully: %s", audioPath)
	return audioPath, nil
}

// MIMEType guesses the content type of an audio file from its extension.
func MIMEType(path string) string {
	switch ext := filepath.Ext(path); ext {
	case ".mp3":
		return "audio/mp3"
	case ".m4a":
		return "audio/mp4"
	case ".wav":
		return "audio/wav"
	case ".ogg", ".opus":
		return "audio/ogg"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
