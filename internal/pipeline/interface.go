package pipeline

import "context"

// Pipeline runs one video URL through download, audio extraction,
// transcription and summarization.
type Pipeline interface {
	Run(ctx context.Context, req Request) Result
}
