package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey means no credential was supplied for the chat
// completion call.
var ErrMissingAPIKey = errors.New("OpenAI API key not found in environment variables")

// ParseError means the model returned something that is not valid JSON.
// Raw carries the unmodified text so the caller can inspect or recover.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse JSON summary: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RequestError wraps transport and HTTP failures from the chat
// completion endpoint.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("summarization failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// envelope matches the JSON shape the prompt pins the model to.
type envelope struct {
	Summary Summary `json:"summary"`
}

// Summarize issues one chat completion over the transcript and parses
// the model's text content as JSON.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (*Summary, error) {
	if s.client == nil {
		return nil, ErrMissingAPIKey
	}

	s.logger.Info(ctx, "Summarizing transcript (%d chars) with %s", len(transcript), s.model)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(userPromptTemplate, transcript)},
		},
	})
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &RequestError{Err: errors.New("empty response from model")}
	}

	raw := resp.Choices[0].Message.Content

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}

	return &env.Summary, nil
}
