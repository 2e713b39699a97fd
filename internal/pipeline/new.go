package pipeline

import (
	"github.com/nguyentantai21042004/summary-flow/internal/downloader"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/transcriber"
	"github.com/nguyentantai21042004/summary-flow/internal/workspace"
)

type implPipeline struct {
	workspace         workspace.Manager
	downloader        downloader.Downloader
	extractor         extractor.Extractor
	transcriber       transcriber.Transcriber
	summarizer        summarizer.Summarizer
	defaultCredential string
	logger            logger.Logger
}

// New creates a Pipeline. defaultCredential is used when a request carries
// no credential of its own; it is read-only and safe to share across runs.
func New(
	ws workspace.Manager,
	dl downloader.Downloader,
	ex extractor.Extractor,
	tr transcriber.Transcriber,
	sm summarizer.Summarizer,
	defaultCredential string,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		workspace:         ws,
		downloader:        dl,
		extractor:         ex,
		transcriber:       tr,
		summarizer:        sm,
		defaultCredential: defaultCredential,
		logger:            log,
	}
}
