package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/call-digest/internal/logger"
)

// chatServer fakes the chat completion endpoint and captures the last
// request body.
type chatServer struct {
	status   int
	content  string // message content to return
	lastBody openai.ChatCompletionRequest
}

func (c *chatServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&c.lastBody)

		if c.status != 0 && c.status != http.StatusOK {
			w.WriteHeader(c.status)
			fmt.Fprint(w, `{"error": {"message": "upstream failure"}}`)
			return
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: c.content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestSummarizer(t *testing.T, cs *chatServer) (*implSummarizer, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(cs.handler())
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	return &implSummarizer{
		client:      openai.NewClientWithConfig(cfg),
		logger:      logger.New("error"),
		model:       "gpt-4o-mini",
		temperature: 0.3,
	}, srv
}

const validSummaryJSON = `{
  "summary": {
    "key_points": ["Client needs GST registration", "Documents pending"],
    "action_items": [
      {"title": "Collect PAN", "task": "Get PAN card copy", "description": "Needed for filing", "deadline": "Friday"}
    ]
  }
}`

func TestSummarizeSuccess(t *testing.T) {
	cs := &chatServer{content: validSummaryJSON}
	s, _ := newTestSummarizer(t, cs)

	summary, err := s.Summarize(context.Background(), "the transcript")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(summary.KeyPoints) != 2 {
		t.Errorf("KeyPoints = %v", summary.KeyPoints)
	}
	if len(summary.ActionItems) != 1 || summary.ActionItems[0].Deadline != "Friday" {
		t.Errorf("ActionItems = %+v", summary.ActionItems)
	}
}

func TestSummarizeEmbedsTranscriptVerbatim(t *testing.T) {
	cs := &chatServer{content: validSummaryJSON}
	s, _ := newTestSummarizer(t, cs)

	transcript := `He said "file by Friday" & left.
Second line stays exactly as is.`

	if _, err := s.Summarize(context.Background(), transcript); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if len(cs.lastBody.Messages) != 2 {
		t.Fatalf("message count = %d, want system + user", len(cs.lastBody.Messages))
	}
	if cs.lastBody.Messages[0].Role != "system" {
		t.Errorf("first message role = %s, want system", cs.lastBody.Messages[0].Role)
	}
	if !strings.Contains(cs.lastBody.Messages[1].Content, transcript) {
		t.Error("user message must embed the transcript verbatim and unmodified")
	}
	if cs.lastBody.Model != "gpt-4o-mini" {
		t.Errorf("model = %s, want gpt-4o-mini", cs.lastBody.Model)
	}
	if cs.lastBody.Temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", cs.lastBody.Temperature)
	}
}

func TestSummarizeMalformedJSON(t *testing.T) {
	raw := "Sure! Here is the summary you asked for: key points are..."
	cs := &chatServer{content: raw}
	s, _ := newTestSummarizer(t, cs)

	_, err := s.Summarize(context.Background(), "the transcript")
	if err == nil {
		t.Fatal("Summarize() should fail on malformed JSON")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Raw != raw {
		t.Errorf("Raw = %q, want the unmodified model output", parseErr.Raw)
	}
}

func TestSummarizeHTTPFailure(t *testing.T) {
	cs := &chatServer{status: http.StatusInternalServerError}
	s, _ := newTestSummarizer(t, cs)

	_, err := s.Summarize(context.Background(), "the transcript")
	if err == nil {
		t.Fatal("Summarize() should fail on HTTP error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Errorf("error type = %T, want *RequestError", err)
	}
}

func TestSummarizeMissingCredential(t *testing.T) {
	s := &implSummarizer{logger: logger.New("error"), model: "gpt-4o-mini"}

	_, err := s.Summarize(context.Background(), "the transcript")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}
