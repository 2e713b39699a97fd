package aitools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	speechToTextPath   = "/speech/speech-to-text"
	summarizePath      = "/ai/summarize"
	textGenerationPath = "/ai/text-generation"
)

// Client talks to the remote AI-tools service. Every call is a single
// attempt authenticated with an x-api-key header; retry policy, if any,
// belongs to the caller.
type Client struct {
	baseURL    string
	speechHTTP *http.Client
	textHTTP   *http.Client
}

// NewClient creates a Client for the service at baseURL. Speech uploads get
// their own, longer timeout than the text endpoints.
func NewClient(baseURL string, speechTimeout, textTimeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		speechHTTP: &http.Client{Timeout: speechTimeout},
		textHTTP:   &http.Client{Timeout: textTimeout},
	}
}

// SpeechToText uploads the audio file and returns the recognized text.
func (c *Client) SpeechToText(ctx context.Context, audioPath, apiKey string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer audio.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("copy audio into form: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+speechToTextPath, &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("x-api-key", apiKey)

	result, err := c.do(c.speechHTTP, req)
	if err != nil {
		return "", err
	}
	return firstField(result, "content", "text", "transcription")
}

// Summarize condenses content into a short summary.
func (c *Client) Summarize(ctx context.Context, content, apiKey string) (string, error) {
	result, err := c.postJSON(ctx, summarizePath, apiKey, map[string]string{"content": content})
	if err != nil {
		return "", err
	}
	return firstField(result, "content", "summary", "text")
}

// GenerateReport expands a summary into a bullet-point report.
func (c *Client) GenerateReport(ctx context.Context, topic, apiKey string) (string, error) {
	result, err := c.postJSON(ctx, textGenerationPath, apiKey, map[string]string{
		"type":  "report",
		"topic": topic,
	})
	if err != nil {
		return "", err
	}
	return firstField(result, "content", "text", "generated_text")
}

func (c *Client) postJSON(ctx context.Context, path, apiKey string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	return c.do(c.textHTTP, req)
}

func (c *Client) do(httpClient *http.Client, req *http.Request) (map[string]any, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("authentication failed (%d): check the API key", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("service returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var result map[string]any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return result, nil
}

// firstField returns the first of keys present in result as a non-empty
// string. The service has shipped several response shapes over time.
func firstField(result map[string]any, keys ...string) (string, error) {
	for _, key := range keys {
		if v, ok := result[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("response has none of the expected fields %v", keys)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
