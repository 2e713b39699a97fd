package workspace

import (
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
)

type implManager struct {
	baseDir string
	logger  logger.Logger
}

// New creates a Manager that allocates run directories under baseDir.
func New(baseDir string, log logger.Logger) Manager {
	return &implManager{
		baseDir: baseDir,
		logger:  log,
	}
}
