package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const (
	serviceName    = "YouTube to Summary API"
	serviceVersion = "1.0.0"
)

type summarizeRequest struct {
	YoutubeURL string `json:"youtube_url"`
	APIKey     string `json:"api_key"`
}

// envelope is the uniform response shape for the summarize endpoint and for
// all error responses.
type envelope struct {
	Success        bool         `json:"success"`
	Data           *summaryData `json:"data,omitempty"`
	Error          string       `json:"error,omitempty"`
	ProcessingTime float64      `json:"processing_time,omitempty"`
	Timestamp      string       `json:"timestamp"`
}

type summaryData struct {
	Content string `json:"content"`
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *implServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(ctx, "Failed to encode response: %v", err)
	}
}

func (s *implServer) writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	s.writeJSON(ctx, w, status, envelope{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
