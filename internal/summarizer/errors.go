package summarizer

import (
	"fmt"
	"strings"
)

// SummarizationError reports a failed summary generation: empty transcript,
// authentication failure, remote service error, or network timeout.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string {
	return fmt.Sprintf("summarize transcript: %v", e.Err)
}

func (e *SummarizationError) Unwrap() error {
	return e.Err
}

// checkTranscript rejects blank input before any remote call: sending an
// empty transcript wastes a request and returns an unhelpful remote error.
func checkTranscript(transcript string) error {
	if strings.TrimSpace(transcript) == "" {
		return &SummarizationError{Err: fmt.Errorf("empty transcript")}
	}
	return nil
}
