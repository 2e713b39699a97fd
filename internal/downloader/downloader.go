package downloader

import (
	"context"
	"os"
	"path/filepath"
)

// Fetch downloads the lowest-quality stream of sourceURL into destPath.
// yt-dlp runs inside the destination's directory so its fragment and part
// files never land outside the run's workspace. No retry: the first failure
// propagates to the caller and the partial file is removed.
func (d *implDownloader) Fetch(ctx context.Context, sourceURL, destPath string) error {
	d.logger.Info(ctx, "Downloading video: %s", sourceURL)

	// Lowest quality is enough for speech: the audio track is all we keep
	args := []string{
		"-f", "worst[ext=mp4]/worst",
		"--no-playlist",
		"--no-progress",
		"-o", destPath,
		sourceURL,
	}

	if _, err := d.executor.ExecuteInDir(ctx, filepath.Dir(destPath), "yt-dlp", args...); err != nil {
		if rmErr := os.Remove(destPath); rmErr != nil && !os.IsNotExist(rmErr) {
			d.logger.Warn(ctx, "Failed to remove partial download %s: %v", destPath, rmErr)
		}
		return &DownloadError{URL: sourceURL, Err: err}
	}

	d.logger.Info(ctx, "Video downloaded: %s", destPath)
	return nil
}
