package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var allowedDocExts = map[string]bool{
	".mp3": true,
	".wav": true,
	".oga": true,
}

// Normalize downloads the item and converts it into a mono 22.05 kHz mp3.
// The declared size is checked before any I/O happens. The intermediate
// raw file is removed on every path; the returned mp3 belongs to the
// caller.
func (n *implNormalizer) Normalize(ctx context.Context, item Item) (string, error) {
	if item.Size > n.maxSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrTooLarge, item.Size, n.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(item.FileName))
	if item.Kind == KindDocument && !allowedDocExts[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	n.logger.Debug(ctx, "Fetching %s media %s (%d bytes)", item.Kind, item.FileRef, item.Size)
	data, err := n.fetcher.Fetch(ctx, item.FileRef)
	if err != nil {
		return "", fmt.Errorf("fetch media: %w", err)
	}

	input, err := os.CreateTemp("", "ingest-*"+inputExt(item, ext))
	if err != nil {
		return "", fmt.Errorf("create temp input: %w", err)
	}
	defer os.Remove(input.Name())

	if _, err := input.Write(data); err != nil {
		input.Close()
		return "", fmt.Errorf("write temp input: %w", err)
	}
	if err := input.Close(); err != nil {
		return "", fmt.Errorf("close temp input: %w", err)
	}

	output, err := os.CreateTemp("", "audio-*.mp3")
	if err != nil {
		return "", fmt.Errorf("create temp output: %w", err)
	}
	output.Close()

	n.logger.Info(ctx, "Transcoding %s: %s -> %s", item.Kind, input.Name(), output.Name())
	if _, err := n.executor.Execute(ctx, n.ffmpegPath, transcodeArgs(item, input.Name(), output.Name())...); err != nil {
		os.Remove(output.Name())
		return "", &TranscodeError{Err: err}
	}

	return output.Name(), nil
}

// transcodeArgs builds the ffmpeg invocation for the item. Video sources
// only need their audio track extracted; everything else is re-encoded
// into the canonical mp3 profile.
func transcodeArgs(item Item, inputPath, outputPath string) []string {
	if item.Kind == KindVideo || item.Kind == KindVideoNote {
		return []string{"-y", "-i", inputPath, "-vn", "-acodec", "libmp3lame", "-q:a", "2", outputPath}
	}
	return []string{"-y", "-i", inputPath, "-c:a", "libmp3lame", "-q:a", "3", "-ac", "1", "-ar", "22050", outputPath}
}

// inputExt picks a filename extension for the raw temp file so ffmpeg
// can recognize the container.
func inputExt(item Item, ext string) string {
	if ext != "" {
		return ext
	}
	switch item.Kind {
	case KindVoice:
		return ".oga"
	case KindVideo, KindVideoNote:
		return ".mp4"
	default:
		return ".mp3"
	}
}
