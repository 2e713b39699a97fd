package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/summary-flow/internal/aitools"
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/downloader"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
	"github.com/nguyentantai21042004/summary-flow/internal/report"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/transcriber"
	"github.com/nguyentantai21042004/summary-flow/internal/workspace"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	apiKey := flag.String("key", "", "API key override for this run")
	output := flag.String("o", "summary_result.json", "result snapshot path (.json or .docx)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pipeline [flags] <youtube-url>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	sourceURL := strings.TrimSpace(flag.Arg(0))

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Temp, 0755); err != nil {
		log.Error(ctx, "Failed to create temp directory: %v", err)
		os.Exit(1)
	}

	pipe := buildPipeline(cfg, log)

	result := pipe.Run(ctx, pipeline.Request{
		SourceURL:  sourceURL,
		Credential: *apiKey,
	})

	if result.Succeeded() {
		fmt.Println(result.Content)
	} else {
		fmt.Fprintf(os.Stderr, "Pipeline failed: %s\n", result.Failure)
	}

	if err := writeSnapshot(result, *output); err != nil {
		log.Error(ctx, "Failed to save result: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Result saved to: %s", *output)

	if !result.Succeeded() {
		os.Exit(1)
	}
}

// writeSnapshot persists the run result; DOCX output only makes sense for a
// report, so a failed run always snapshots as JSON.
func writeSnapshot(result pipeline.Result, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".docx") && result.Succeeded() {
		return report.WriteDocx("Video Summary", result.Content, path)
	}
	return report.WriteJSON(result, path)
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
