package summarizer

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

const reportPrompt = `You are a content analyst. Based on the transcript below, write a bullet-point report.

Requirements:
- One bullet per key point, in order of appearance
- Each bullet starts with "- " on its own line
- Plain text only, no headings or markdown emphasis
- Keep technical terms as they appear in the transcript

Transcript:
---
%s
---`

type implGemini struct {
	model  string
	logger logger.Logger
}

// NewGemini creates a Summarizer backed by the Gemini API. The run's
// credential is used as the API key, so concurrent runs with different
// credentials never share a client.
func NewGemini(model string, log logger.Logger) Summarizer {
	return &implGemini{
		model:  model,
		logger: log,
	}
}

func (s *implGemini) Summarize(ctx context.Context, transcript, credential string) (string, error) {
	if err := checkTranscript(transcript); err != nil {
		return "", err
	}

	s.logger.Info(ctx, "Summarizing transcript with Gemini (%d chars)", len(transcript))

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &SummarizationError{Err: fmt.Errorf("create client: %w", err)}
	}

	prompt := fmt.Sprintf(reportPrompt, transcript)
	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &SummarizationError{Err: fmt.Errorf("generate content: %w", err)}
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", &SummarizationError{Err: fmt.Errorf("empty response from Gemini")}
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", &SummarizationError{Err: fmt.Errorf("empty response from Gemini")}
	}

	s.logger.Info(ctx, "Report generated (%d chars)", len(text))
	return text, nil
}
