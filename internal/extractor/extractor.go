package extractor

import (
	"context"
	"fmt"
	"os"
)

// Extract pulls the audio track out of videoPath and writes it to audioPath.
// A missing ffmpeg binary surfaces as a ConversionError like any other
// failure. On failure no audio file is left behind.
func (e *implExtractor) Extract(ctx context.Context, videoPath, audioPath string) error {
	if _, err := os.Stat(videoPath); err != nil {
		return &ConversionError{VideoPath: videoPath, Err: fmt.Errorf("source video not readable: %w", err)}
	}

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn drops the video stream, leaving only the encoded audio track
	args := []string{
		"-i", videoPath,
		"-vn",
		"-c:a", e.audioCodec,
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		if rmErr := os.Remove(audioPath); rmErr != nil && !os.IsNotExist(rmErr) {
			e.logger.Warn(ctx, "Failed to remove partial audio file %s: %v", audioPath, rmErr)
		}
		return &ConversionError{VideoPath: videoPath, Err: err}
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return nil
}
