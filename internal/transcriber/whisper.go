package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

type implWhisper struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a Transcriber that runs a local whisper.cpp binary.
// The credential argument is ignored; nothing leaves the host.
func NewWhisper(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (t *implWhisper) Transcribe(ctx context.Context, audioPath, _ string) (string, error) {
	// whisper.cpp appends .txt to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing audio with whisper (%d threads): %s", t.cfg.Threads, audioPath)

	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return "", &TranscriptionError{Err: err}
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", &TranscriptionError{Err: fmt.Errorf("read whisper output: %w", err)}
	}

	text := strings.TrimSpace(string(data))
	t.logger.Info(ctx, "Transcription completed (%d chars)", len(text))
	return text, nil
}
