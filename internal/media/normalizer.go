package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CanonicalExt is the container every downstream stage expects.
const CanonicalExt = ".wav"

// ConversionError marks a failed ffmpeg invocation; fatal to the
// pipeline run, no chunking is attempted after it.
type ConversionError struct {
	Stage string // "extraction" or "conversion"
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("audio %s failed: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Normalize produces {tempDir}/{basename}.wav from inputPath.
// Video inputs get their audio stream extracted; non-WAV audio is
// transcoded; WAV audio is copied (or aliased when paths match).
func (n *implNormalizer) Normalize(ctx context.Context, inputPath, tempDir string) (string, error) {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	audioPath := filepath.Join(tempDir, name+CanonicalExt)

	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return "", &ConversionError{Stage: "conversion", Err: err}
	}

	fileType := DetectFileType(inputPath)

	if fileType == FileTypeVideo {
		n.logger.Info(ctx, "Extracting audio from video: %s", inputPath)

		// -q:a 0: best VBR audio quality
		// -map a: audio streams only
		// -vn:    strip video
		args := []string{
			"-i", inputPath,
			"-q:a", "0",
			"-map", "a",
			"-vn",
			audioPath,
			"-y",
		}
		if _, err := n.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return "", &ConversionError{Stage: "extraction", Err: err}
		}

		n.logger.Info(ctx, "Audio extracted: %s", audioPath)
		return audioPath, nil
	}

	if !strings.EqualFold(filepath.Ext(inputPath), CanonicalExt) {
		n.logger.Info(ctx, "Converting audio to WAV: %s", inputPath)

		args := []string{
			"-i", inputPath,
			audioPath,
			"-y",
		}
		if _, err := n.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return "", &ConversionError{Stage: "conversion", Err: err}
		}

		return audioPath, nil
	}

	// Already canonical. Same path means nothing to do.
	if inputPath == audioPath {
		return inputPath, nil
	}

	if err := copyFile(inputPath, audioPath); err != nil {
		return "", &ConversionError{Stage: "conversion", Err: err}
	}
	return audioPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
