package splitter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyAudio means the canonical audio produced zero chunks, e.g. a
// zero-length stream. Fatal to the pipeline run.
var ErrEmptyAudio = errors.New("failed to split audio into chunks")

// ChunkDelimiter separates the base name from the chunk index in chunk
// file names: {basename}_chunk_{i}.wav.
const ChunkDelimiter = "_chunk_"

// Split cuts audioPath into windows of chunkLengthSec seconds, writing
// each window into {tempDir}/{basename}_chunks/ as a stream copy.
// The window advances by chunkLengthSec from zero until it reaches the
// total duration, so a C-second stream yields ceil(C/L) chunks with
// only the last one possibly short.
func (s *implSplitter) Split(ctx context.Context, audioPath, tempDir string, chunkLengthSec int) ([]Chunk, error) {
	if chunkLengthSec <= 0 {
		return nil, fmt.Errorf("chunk length must be positive, got %d", chunkLengthSec)
	}

	info, err := s.prober.Probe(audioPath)
	if err != nil {
		return nil, fmt.Errorf("probe audio: %w", err)
	}
	total := info.Duration

	base := filepath.Base(audioPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	chunksDir := filepath.Join(tempDir, name+"_chunks")
	if err := os.MkdirAll(chunksDir, 0755); err != nil {
		return nil, fmt.Errorf("create chunks dir: %w", err)
	}

	chunkLen := time.Duration(chunkLengthSec) * time.Second

	var chunks []Chunk
	for start := time.Duration(0); start < total; start += chunkLen {
		length := chunkLen
		if remaining := total - start; remaining < length {
			length = remaining
		}

		index := len(chunks)
		chunkPath := filepath.Join(chunksDir, fmt.Sprintf("%s%s%d.wav", name, ChunkDelimiter, index))

		// -ss/-t before -i seeks on the input; -c copy keeps the cut
		// a container export, no re-encode.
		args := []string{
			"-ss", formatSeconds(start),
			"-t", formatSeconds(length),
			"-i", audioPath,
			"-c", "copy",
			chunkPath,
			"-y",
		}
		if _, err := s.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return nil, fmt.Errorf("export chunk %d: %w", index, err)
		}

		chunks = append(chunks, Chunk{
			Index:    index,
			Path:     chunkPath,
			Duration: length,
		})
	}

	if len(chunks) == 0 {
		return nil, ErrEmptyAudio
	}

	s.logger.Info(ctx, "Split %s (%s) into %d chunks of %ds", audioPath, total, len(chunks), chunkLengthSec)
	return chunks, nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
