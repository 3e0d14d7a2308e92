package transcriber

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/call-digest/internal/splitter"
)

// Result is the outcome of transcribing one chunk. Exactly one of
// Transcript/Err is meaningful; failures never propagate as errors past
// this boundary.
type Result struct {
	Index      int
	ChunkID    string
	FileName   string
	Transcript string
	Err        string
	Elapsed    time.Duration // wall clock, set by the dispatcher
}

// Failed reports whether the chunk produced an error instead of text.
func (r Result) Failed() bool {
	return r.Err != ""
}

// Transcriber calls the remote speech-to-text service for one chunk.
type Transcriber interface {
	Transcribe(ctx context.Context, chunk splitter.Chunk) Result
}
