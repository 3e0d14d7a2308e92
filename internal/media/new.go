package media

import (
	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/pkg/executor"
)

type implNormalizer struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Normalizer that shells out to ffmpeg via exec.
func New(exec executor.Executor, log logger.Logger) Normalizer {
	return &implNormalizer{
		executor: exec,
		logger:   log,
	}
}
