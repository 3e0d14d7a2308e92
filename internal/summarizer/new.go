package summarizer

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/call-digest/internal/config"
	"github.com/nguyentantai21042004/call-digest/internal/logger"
)

// chatClient is the slice of the OpenAI client the summarizer needs;
// satisfied by *openai.Client.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type implSummarizer struct {
	client      chatClient // nil when no credential was supplied
	logger      logger.Logger
	model       string
	temperature float32
}

// New creates a Summarizer against the OpenAI chat completion endpoint.
// Unlike transcription, a missing credential here is fatal per call.
func New(cfg config.OpenAIConfig, apiKey string, log logger.Logger) Summarizer {
	s := &implSummarizer{
		logger:      log,
		model:       cfg.SummaryModel,
		temperature: cfg.Temperature,
	}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}
