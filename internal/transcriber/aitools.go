package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/summary-flow/internal/aitools"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implAITools struct {
	client *aitools.Client
	logger logger.Logger
}

// NewAITools creates a Transcriber that uploads audio to the remote
// speech-to-text service.
func NewAITools(client *aitools.Client, log logger.Logger) Transcriber {
	return &implAITools{
		client: client,
		logger: log,
	}
}

// Transcribe uploads the audio file in a single attempt; any failure
// propagates immediately.
func (t *implAITools) Transcribe(ctx context.Context, audioPath, credential string) (string, error) {
	t.logger.Info(ctx, "Transcribing audio via speech-to-text service: %s", audioPath)

	text, err := t.client.SpeechToText(ctx, audioPath, credential)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}

	t.logger.Info(ctx, "Transcription completed (%d chars)", len(text))
	return text, nil
}
