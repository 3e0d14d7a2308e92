package transcriber

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/call-digest/internal/config"
	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/wavinfo"
	"github.com/nguyentantai21042004/call-digest/pkg/executor"
)

// translationClient is the slice of the OpenAI client the transcriber
// needs; satisfied by *openai.Client.
type translationClient interface {
	CreateTranslation(ctx context.Context, request openai.AudioRequest) (openai.AudioResponse, error)
}

type implTranscriber struct {
	client      translationClient // nil when no credential was supplied
	executor    executor.Executor
	prober      wavinfo.Prober
	logger      logger.Logger
	model       string
	uploadLimit int64 // max raw PCM bytes per request
}

// New creates a Transcriber against the OpenAI audio translation
// endpoint. An empty apiKey is not fatal here: every chunk then settles
// with a per-chunk error instead.
func New(cfg config.OpenAIConfig, apiKey string, exec executor.Executor, prober wavinfo.Prober, log logger.Logger) Transcriber {
	t := &implTranscriber{
		executor:    exec,
		prober:      prober,
		logger:      log,
		model:       cfg.TranscribeModel,
		uploadLimit: int64(cfg.UploadLimitMiB) * 1024 * 1024,
	}
	if apiKey != "" {
		t.client = openai.NewClient(apiKey)
	}
	return t
}
