package splitter

import (
	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/wavinfo"
	"github.com/nguyentantai21042004/call-digest/pkg/executor"
)

type implSplitter struct {
	executor executor.Executor
	prober   wavinfo.Prober
	logger   logger.Logger
}

// New creates a Splitter that probes durations with the WAV decoder and
// cuts chunk files with ffmpeg stream copies.
func New(exec executor.Executor, prober wavinfo.Prober, log logger.Logger) Splitter {
	return &implSplitter{
		executor: exec,
		prober:   prober,
		logger:   log,
	}
}
