package assembler

import (
	"errors"
	"testing"

	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
)

func TestAssembleRestoresChunkOrder(t *testing.T) {
	// Results arrive in completion order, not chunk order.
	results := []transcriber.Result{
		{Index: 2, ChunkID: "call_chunk_2", Transcript: "third"},
		{Index: 0, ChunkID: "call_chunk_0", Transcript: "first"},
		{Index: 10, ChunkID: "call_chunk_10", Transcript: "eleventh"},
		{Index: 1, ChunkID: "call_chunk_1", Transcript: "second"},
		{Index: 9, ChunkID: "call_chunk_9", Transcript: "tenth"},
	}

	got, err := Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	want := "first second third tenth eleventh"
	if got != want {
		t.Errorf("Assemble() = %q, want %q", got, want)
	}
}

func TestAssembleSkipsFailedAndEmptyChunks(t *testing.T) {
	results := []transcriber.Result{
		{Index: 0, Transcript: "hello"},
		{Index: 1, Err: "network error"},
		{Index: 2, Transcript: "world"},
		{Index: 3, Transcript: ""},
	}

	got, err := Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	// Failed and empty chunks contribute nothing; no placeholders.
	if got != "hello world" {
		t.Errorf("Assemble() = %q, want %q", got, "hello world")
	}
}

func TestAssembleAllFailed(t *testing.T) {
	results := []transcriber.Result{
		{Index: 0, Err: "OpenAI API key not found in environment variables"},
		{Index: 1, Err: "network error"},
	}

	_, err := Assemble(results)
	if !errors.Is(err, ErrNoTranscript) {
		t.Errorf("error = %v, want ErrNoTranscript", err)
	}
}

func TestAssembleNoResults(t *testing.T) {
	if _, err := Assemble(nil); !errors.Is(err, ErrNoTranscript) {
		t.Errorf("error = %v, want ErrNoTranscript", err)
	}
}

func TestAssembleLegacyChunkIDFallback(t *testing.T) {
	// Index 0 on a result with a composite id is ambiguous with the
	// zero value; the id parse must win.
	results := []transcriber.Result{
		{Index: 0, ChunkID: "call_chunk_3", Transcript: "late"},
		{Index: 0, ChunkID: "call_chunk_1", Transcript: "early"},
	}

	got, err := Assemble(results)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if got != "early late" {
		t.Errorf("Assemble() = %q, want %q", got, "early late")
	}
}

func TestParseChunkIndex(t *testing.T) {
	tests := []struct {
		chunkID string
		want    int
	}{
		{"call_chunk_0", 0},
		{"call_chunk_7", 7},
		{"call_chunk_12", 12},
		{"my_call_chunk_3", 3},
		{"no_delimiter_here", 0}, // legacy fallback, sorts first
		{"call_chunk_abc", 0},    // non-numeric tail
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.chunkID, func(t *testing.T) {
			if got := ParseChunkIndex(tt.chunkID); got != tt.want {
				t.Errorf("ParseChunkIndex(%q) = %d, want %d", tt.chunkID, got, tt.want)
			}
		})
	}
}
