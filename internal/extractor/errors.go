package extractor

import "fmt"

// ConversionError reports a failed audio extraction: unreadable source, no
// audio track, an unproducible target codec, or a missing ffmpeg binary.
type ConversionError struct {
	VideoPath string
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("extract audio from %s: %v", e.VideoPath, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
