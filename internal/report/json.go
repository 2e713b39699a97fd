package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

// snapshot mirrors the summarize endpoint's result shape: content on
// success, error on failure.
type snapshot struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON saves a pipeline result as a JSON snapshot file.
func WriteJSON(result pipeline.Result, path string) error {
	snap := snapshot{Content: result.Content, Error: result.Failure}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}
