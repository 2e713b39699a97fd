package downloader

import (
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

type implDownloader struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by the yt-dlp binary.
func New(exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		executor: exec,
		logger:   log,
	}
}
