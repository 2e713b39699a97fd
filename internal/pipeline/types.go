package pipeline

import (
	"fmt"
	"net/url"
	"strings"
)

// Request is one pipeline run's input.
type Request struct {
	// SourceURL locates the video to summarize.
	SourceURL string
	// Credential overrides the configured default API key when non-empty.
	Credential string
}

func (r Request) validate() error {
	if strings.TrimSpace(r.SourceURL) == "" {
		return fmt.Errorf("source URL cannot be empty")
	}
	u, err := url.Parse(r.SourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("source URL %q is not a valid URL", r.SourceURL)
	}
	return nil
}

// Result is the pipeline's sole return contract: either Content or Failure
// is populated, never both.
type Result struct {
	Content string
	Failure string
}

// Succeeded reports whether the run produced a report.
func (r Result) Succeeded() bool {
	return r.Failure == ""
}

func success(content string) Result {
	return Result{Content: content}
}

func failure(err error) Result {
	return Result{Failure: err.Error()}
}

// State is the orchestrator's position in the run. Transitions are strictly
// linear; Failed is terminal and reachable from every non-terminal state.
type State string

const (
	StateIdle         State = "idle"
	StateDownloading  State = "downloading"
	StateExtracting   State = "extracting"
	StateTranscribing State = "transcribing"
	StateSummarizing  State = "summarizing"
	StateDone         State = "done"
	StateFailed       State = "failed"
)
