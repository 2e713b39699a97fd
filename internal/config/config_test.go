package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				AITools: AIToolsConfig{
					APIKey: "test-key",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "whisper provider without binary",
			config: Config{
				AITools:     AIToolsConfig{APIKey: "test-key"},
				Transcriber: TranscriberConfig{Provider: "whisper"},
			},
			wantErr: true,
		},
		{
			name: "whisper provider fully configured",
			config: Config{
				AITools:     AIToolsConfig{APIKey: "test-key"},
				Transcriber: TranscriberConfig{Provider: "whisper"},
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
					ModelPath:  "models/test.bin",
				},
			},
			wantErr: false,
		},
		{
			name: "unknown transcriber provider",
			config: Config{
				AITools:     AIToolsConfig{APIKey: "test-key"},
				Transcriber: TranscriberConfig{Provider: "siri"},
			},
			wantErr: true,
		},
		{
			name: "unknown summarizer provider",
			config: Config{
				AITools:    AIToolsConfig{APIKey: "test-key"},
				Summarizer: SummarizerConfig{Provider: "gpt"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		AITools: AIToolsConfig{APIKey: "test-key"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Port = %v, want 5000", cfg.Server.Port)
	}
	if cfg.AITools.SpeechTimeout() != 120*time.Second {
		t.Errorf("SpeechTimeout = %v, want 120s", cfg.AITools.SpeechTimeout())
	}
	if cfg.Transcriber.Provider != "aitools" {
		t.Errorf("Transcriber.Provider = %v, want aitools", cfg.Transcriber.Provider)
	}
	if cfg.Summarizer.Provider != "aitools" {
		t.Errorf("Summarizer.Provider = %v, want aitools", cfg.Summarizer.Provider)
	}
	if cfg.Paths.Temp != "data/temp" {
		t.Errorf("Paths.Temp = %v, want data/temp", cfg.Paths.Temp)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  host: "127.0.0.1"
  port: 8080

aitools:
  base_url: "https://ai.example.com/api/v1"
  api_key: "file-key"
  speech_timeout_sec: 90

transcriber:
  provider: "aitools"

summarizer:
  provider: "gemini"

logging:
  level: "debug"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %v, want %v", cfg.Server.Port, 8080)
	}
	if cfg.AITools.BaseURL != "https://ai.example.com/api/v1" {
		t.Errorf("BaseURL = %v, want %v", cfg.AITools.BaseURL, "https://ai.example.com/api/v1")
	}
	if cfg.AITools.SpeechTimeout() != 90*time.Second {
		t.Errorf("SpeechTimeout = %v, want 90s", cfg.AITools.SpeechTimeout())
	}
	if cfg.Summarizer.Provider != "gemini" {
		t.Errorf("Summarizer.Provider = %v, want gemini", cfg.Summarizer.Provider)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  port: 8080
aitools:
  api_key: "file-key"
`
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "env-key")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.AITools.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want env-key", cfg.AITools.APIKey)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
