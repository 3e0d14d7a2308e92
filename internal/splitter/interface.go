package splitter

import (
	"context"
	"time"
)

// Chunk is one fixed-length segment cut from the canonical audio.
// Index is dense and zero-based in cut order; it is the single source
// of truth for reassembly.
type Chunk struct {
	Index    int
	Path     string
	Duration time.Duration // hint only, not authoritative
}

// Splitter partitions a canonical WAV file into independently decodable
// fixed-duration chunk files.
type Splitter interface {
	Split(ctx context.Context, audioPath, tempDir string, chunkLengthSec int) ([]Chunk, error)
}
