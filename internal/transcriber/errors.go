package transcriber

import "fmt"

// TranscriptionError reports a failed speech-to-text conversion:
// authentication failure, unsupported audio, remote service error, or
// network timeout.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribe audio: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}
