package extractor

import "context"

// Extractor produces a standalone audio file from a video container
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string) error
}
