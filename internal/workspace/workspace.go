package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	videoFilename = "video.mp4"
	audioFilename = "audio.mp3"
)

// Artifacts is the temporary file set owned by exactly one pipeline run.
// The video and audio paths are reserved names inside Dir; the files are
// created later by the download and extraction steps.
type Artifacts struct {
	Dir       string
	VideoPath string
	AudioPath string
}

// Acquire creates a fresh uniquely-named run directory and returns the
// reserved artifact paths. A stale directory with the same name is removed
// first so every run starts empty.
func (m *implManager) Acquire() (Artifacts, error) {
	dir := filepath.Join(m.baseDir, "run-"+uuid.NewString())

	if err := os.RemoveAll(dir); err != nil {
		return Artifacts{}, fmt.Errorf("remove stale run directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Artifacts{}, fmt.Errorf("create run directory: %w", err)
	}

	return Artifacts{
		Dir:       dir,
		VideoPath: filepath.Join(dir, videoFilename),
		AudioPath: filepath.Join(dir, audioFilename),
	}, nil
}

// Release deletes the run directory and everything in it. Safe to call when
// no files were ever created, and calling it twice is a no-op.
func (m *implManager) Release(ctx context.Context, a Artifacts) {
	if a.Dir == "" {
		return
	}
	if err := os.RemoveAll(a.Dir); err != nil {
		m.logger.Warn(ctx, "Failed to remove run directory %s: %v", a.Dir, err)
		return
	}
	m.logger.Debug(ctx, "Removed run directory: %s", a.Dir)
}
