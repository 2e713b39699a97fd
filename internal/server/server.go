package server

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

const maxRequestBytes = 16 << 20 // 16 MiB

// Handler builds the full route table with CORS and panic recovery applied.
func (s *implServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/v1/summarize", s.handleSummarize)
	mux.HandleFunc("/api/v1/status", s.handleStatus)

	return cors.AllowAll().Handler(s.recover(mux))
}

// ListenAndServe blocks serving HTTP until the listener fails.
func (s *implServer) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.logger.Info(context.Background(), "HTTP server listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleRoot serves the health check on exactly "/" and a JSON 404 for every
// unknown path.
func (s *implServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.URL.Path != "/" {
		s.writeError(ctx, w, http.StatusNotFound, "Endpoint not found")
		return
	}
	if r.Method != http.MethodGet {
		s.writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *implServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		s.writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, map[string]any{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "running",
		"endpoints": map[string]string{
			"GET /":                  "Health check",
			"POST /api/v1/summarize": "Process YouTube video and generate summary",
			"GET /api/v1/status":     "Get API status",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *implServer) handleSummarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	if r.Method != http.MethodPost {
		s.writeError(ctx, w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if contentType != "application/json" {
		s.writeError(ctx, w, http.StatusBadRequest, "Content-Type must be application/json")
		return
	}

	var req summarizeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := decodeJSON(r, &req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(ctx, w, http.StatusRequestEntityTooLarge, "Request entity too large")
			return
		}
		s.writeError(ctx, w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	youtubeURL := strings.TrimSpace(req.YoutubeURL)
	if youtubeURL == "" {
		s.writeError(ctx, w, http.StatusBadRequest, "Missing required field 'youtube_url'")
		return
	}
	if !strings.Contains(youtubeURL, "youtube.com") && !strings.Contains(youtubeURL, "youtu.be") {
		s.writeError(ctx, w, http.StatusBadRequest, "Invalid YouTube URL. Must be a valid YouTube link.")
		return
	}

	s.logger.Info(ctx, "Processing YouTube URL: %s", youtubeURL)

	result := s.pipeline.Run(ctx, pipeline.Request{
		SourceURL:  youtubeURL,
		Credential: req.APIKey,
	})

	elapsed := time.Since(start).Seconds()
	now := time.Now().Format(time.RFC3339)

	if !result.Succeeded() {
		s.logger.Error(ctx, "Pipeline failed: %s", result.Failure)
		s.writeJSON(ctx, w, http.StatusInternalServerError, envelope{
			Success:        false,
			Error:          result.Failure,
			ProcessingTime: elapsed,
			Timestamp:      now,
		})
		return
	}

	s.logger.Info(ctx, "Successfully processed YouTube video in %.2f seconds", elapsed)
	s.writeJSON(ctx, w, http.StatusOK, envelope{
		Success:        true,
		Data:           &summaryData{Content: result.Content},
		ProcessingTime: elapsed,
		Timestamp:      now,
	})
}

// recover converts a handler panic into a JSON 500 instead of killing the
// connection without a response.
func (s *implServer) recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "Panic serving %s: %v", r.URL.Path, rec)
				s.writeError(r.Context(), w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
