package summarizer

import "context"

// Summarizer turns a transcript into a bullet-point report
type Summarizer interface {
	Summarize(ctx context.Context, transcript, credential string) (string, error)
}
