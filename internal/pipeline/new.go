package pipeline

import (
	"github.com/nguyentantai21042004/call-digest/internal/config"
	"github.com/nguyentantai21042004/call-digest/internal/downloader"
	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/media"
	"github.com/nguyentantai21042004/call-digest/internal/splitter"
	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
	"github.com/nguyentantai21042004/call-digest/internal/wavinfo"
	"github.com/nguyentantai21042004/call-digest/pkg/executor"
)

type implPipeline struct {
	cfg        *config.Config
	logger     logger.Logger
	downloader downloader.Downloader
	normalizer media.Normalizer
	splitter   splitter.Splitter

	// Factories, not instances: the credential arrives per request.
	newTranscriber func(apiKey string) transcriber.Transcriber
	newSummarizer  func(apiKey string) summarizer.Summarizer
}

// New wires the full pipeline from config, an executor and a logger.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Pipeline {
	prober := wavinfo.NewProber()

	return &implPipeline{
		cfg:        cfg,
		logger:     log,
		downloader: downloader.New(log),
		normalizer: media.New(exec, log),
		splitter:   splitter.New(exec, prober, log),
		newTranscriber: func(apiKey string) transcriber.Transcriber {
			return transcriber.New(cfg.OpenAI, apiKey, exec, prober, log)
		},
		newSummarizer: func(apiKey string) summarizer.Summarizer {
			return summarizer.New(cfg.OpenAI, apiKey, log)
		},
	}
}
