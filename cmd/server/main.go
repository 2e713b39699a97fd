package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/summary-flow/internal/aitools"
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/downloader"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
	"github.com/nguyentantai21042004/summary-flow/internal/server"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/transcriber"
	"github.com/nguyentantai21042004/summary-flow/internal/workspace"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// .env is optional; environment overrides still apply without it
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube to Summary API")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Transcriber provider: %s", cfg.Transcriber.Provider)
	log.Info(ctx, "Summarizer provider: %s", cfg.Summarizer.Provider)
	log.Info(ctx, "Temp directory: %s", cfg.Paths.Temp)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp directory: %v", err)
		os.Exit(1)
	}

	pipe := buildPipeline(cfg, log)
	srv := server.New(cfg.Server, pipe, log)

	log.Info(ctx, "Available endpoints:")
	log.Info(ctx, "  GET  /                   - Health check")
	log.Info(ctx, "  POST /api/v1/summarize   - Process YouTube video")
	log.Info(ctx, "  GET  /api/v1/status      - API status")

	if err := srv.ListenAndServe(); err != nil {
		log.Error(ctx, "Server stopped: %v", err)
		os.Exit(1)
	}
}

// buildPipeline wires the pipeline steps according to the configured
// providers.
func buildPipeline(cfg *config.Config, log logger.Logger) pipeline.Pipeline {
	exec := executor.New()
	aiClient := aitools.NewClient(cfg.AITools.BaseURL, cfg.AITools.SpeechTimeout(), cfg.AITools.SummarizeTimeout())

	var tr transcriber.Transcriber
	switch cfg.Transcriber.Provider {
	case "whisper":
		tr = transcriber.NewWhisper(cfg.Whisper, exec, log)
	default:
		tr = transcriber.NewAITools(aiClient, log)
	}

	var sm summarizer.Summarizer
	switch cfg.Summarizer.Provider {
	case "gemini":
		sm = summarizer.NewGemini(cfg.Gemini.Model, log)
	default:
		sm = summarizer.NewAITools(aiClient, log)
	}

	return pipeline.New(
		workspace.New(cfg.Paths.Temp, log),
		downloader.New(exec, log),
		extractor.New(cfg.FFmpeg.AudioCodec, exec, log),
		tr,
		sm,
		cfg.AITools.APIKey,
		log,
	)
}
