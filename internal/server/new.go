package server

import (
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

type implServer struct {
	cfg      config.ServerConfig
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a Server serving the given pipeline.
func New(cfg config.ServerConfig, pipe pipeline.Pipeline, log logger.Logger) Server {
	return &implServer{
		cfg:      cfg,
		pipeline: pipe,
		logger:   log,
	}
}
