package extractor

import (
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

type implExtractor struct {
	audioCodec string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates an Extractor backed by the ffmpeg binary.
func New(audioCodec string, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		audioCodec: audioCodec,
		executor:   exec,
		logger:     log,
	}
}
