package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	AITools     AIToolsConfig     `yaml:"aitools"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AIToolsConfig struct {
	BaseURL             string `yaml:"base_url"`
	APIKey              string `yaml:"api_key"`
	SpeechTimeoutSec    int    `yaml:"speech_timeout_sec"`
	SummarizeTimeoutSec int    `yaml:"summarize_timeout_sec"`
}

// SpeechTimeout returns the speech-to-text request timeout.
func (c AIToolsConfig) SpeechTimeout() time.Duration {
	return time.Duration(c.SpeechTimeoutSec) * time.Second
}

// SummarizeTimeout returns the summarize/text-generation request timeout.
func (c AIToolsConfig) SummarizeTimeout() time.Duration {
	return time.Duration(c.SummarizeTimeoutSec) * time.Second
}

type TranscriberConfig struct {
	Provider string `yaml:"provider"` // "aitools" or "whisper"
}

type SummarizerConfig struct {
	Provider string `yaml:"provider"` // "aitools" or "gemini"
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type FFmpegConfig struct {
	AudioCodec string `yaml:"audio_codec"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file, applies environment overrides and defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnv overrides file values with environment variables when set.
func (c *Config) applyEnv() {
	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if key := os.Getenv("API_KEY"); key != "" {
		c.AITools.APIKey = key
	}
}

func (c *Config) Validate() error {
	if c.AITools.APIKey == "" {
		return fmt.Errorf("aitools.api_key is required")
	}
	if c.Transcriber.Provider == "whisper" {
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required for the whisper transcriber")
		}
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required for the whisper transcriber")
		}
	}

	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.AITools.BaseURL == "" {
		c.AITools.BaseURL = "https://ai-tools.rev21labs.com/api/v1"
	}
	if c.AITools.SpeechTimeoutSec == 0 {
		c.AITools.SpeechTimeoutSec = 120
	}
	if c.AITools.SummarizeTimeoutSec == 0 {
		c.AITools.SummarizeTimeoutSec = 60
	}
	if c.Transcriber.Provider == "" {
		c.Transcriber.Provider = "aitools"
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "aitools"
	}
	if c.Transcriber.Provider != "aitools" && c.Transcriber.Provider != "whisper" {
		return fmt.Errorf("transcriber.provider must be aitools or whisper, got %q", c.Transcriber.Provider)
	}
	if c.Summarizer.Provider != "aitools" && c.Summarizer.Provider != "gemini" {
		return fmt.Errorf("summarizer.provider must be aitools or gemini, got %q", c.Summarizer.Provider)
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "libmp3lame"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
