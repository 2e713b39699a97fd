package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/aitools"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implAITools struct {
	client *aitools.Client
	logger logger.Logger
}

// NewAITools creates a Summarizer backed by the remote AI-tools service.
func NewAITools(client *aitools.Client, log logger.Logger) Summarizer {
	return &implAITools{
		client: client,
		logger: log,
	}
}

// Summarize condenses the transcript, then expands the condensed summary
// into a bullet-point report. Two remote calls, each a single attempt.
func (s *implAITools) Summarize(ctx context.Context, transcript, credential string) (string, error) {
	if err := checkTranscript(transcript); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summarizing transcript (%d chars)", len(transcript))

	summary, err := s.client.Summarize(ctx, transcript, credential)
	if err != nil {
		return "", &SummarizationError{Err: err}
	}

	s.logger.Info(ctx, "Generating bullet-point report")

	report, err := s.client.GenerateReport(ctx, summary, credential)
	if err != nil {
		return "", &SummarizationError{Err: err}
	}

	s.logger.Info(ctx, "Report generated (%d chars)", len(report))
	return report, nil
}
