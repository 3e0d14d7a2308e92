package media

import "context"

// Normalizer converts an arbitrary media file into one canonical WAV
// audio artifact inside the request temp directory.
type Normalizer interface {
	// Normalize returns the path of the canonical audio file derived
	// from inputPath, located at {tempDir}/{basename}.wav.
	Normalize(ctx context.Context, inputPath, tempDir string) (string, error)
}
