package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
)

// Request carries everything one transcription run needs. No ambient
// state: credential and tuning travel with the call.
type Request struct {
	Source         string // local file path, or URL when IsURL is set
	IsURL          bool
	TempDir        string // request-scoped; removed on every exit path
	Concurrency    int    // transcription calls in flight, min 1
	ChunkLengthSec int    // > 0
	APIKey         string // bearer credential for both remote services
}

// Pipeline runs the full transcribe-and-summarize flow for one input.
type Pipeline interface {
	TranscribeAndSummarize(ctx context.Context, req Request) (*summarizer.Summary, error)
}
