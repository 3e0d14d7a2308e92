package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/call-digest/internal/splitter"
)

// translatePrompt instructs the service to auto-detect the spoken
// language and translate to English.
const translatePrompt = "First figure out the language in audio file and then translate the audio into English"

const missingCredentialMsg = "OpenAI API key not found in environment variables"

// Transcribe settles one chunk into a Result. Oversized chunks (raw PCM
// above the upload limit) are sub-split and transcribed sequentially
// inside this call; no failure mode returns an error.
func (t *implTranscriber) Transcribe(ctx context.Context, chunk splitter.Chunk) Result {
	fileName := filepath.Base(chunk.Path)
	result := Result{
		Index:    chunk.Index,
		ChunkID:  strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		FileName: fileName,
	}

	if t.client == nil {
		result.Err = missingCredentialMsg
		return result
	}

	info, err := t.prober.Probe(chunk.Path)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	var transcript string
	if info.PCMBytes > t.uploadLimit {
		transcript, err = t.transcribeOversized(ctx, chunk.Path, info.PCMBytes, info.ByteRate)
	} else {
		transcript, err = t.translate(ctx, chunk.Path)
	}
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.Transcript = transcript
	return result
}

// transcribeOversized cuts the chunk into windows whose raw size fits
// the upload limit, transcribes them in order, and joins the texts.
// Each window file is removed right after its call settles.
func (t *implTranscriber) transcribeOversized(ctx context.Context, chunkPath string, pcmBytes int64, byteRate int) (string, error) {
	if byteRate <= 0 {
		return "", fmt.Errorf("cannot sub-split %s: unknown byte rate", chunkPath)
	}

	windowSec := float64(t.uploadLimit) / float64(byteRate)
	windows := int((pcmBytes + t.uploadLimit - 1) / t.uploadLimit)

	t.logger.Info(ctx, "Chunk %s exceeds upload limit (%d bytes), sub-splitting into %d windows of %.1fs",
		filepath.Base(chunkPath), pcmBytes, windows, windowSec)

	var texts []string
	for i := 0; i < windows; i++ {
		windowPath := fmt.Sprintf("%s_part_%d.wav", strings.TrimSuffix(chunkPath, filepath.Ext(chunkPath)), i)

		args := []string{
			"-ss", strconv.FormatFloat(float64(i)*windowSec, 'f', 3, 64),
			"-t", strconv.FormatFloat(windowSec, 'f', 3, 64),
			"-i", chunkPath,
			"-c", "copy",
			windowPath,
			"-y",
		}
		if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return "", fmt.Errorf("export sub-window %d: %w", i, err)
		}

		text, err := t.translate(ctx, windowPath)
		if rmErr := os.Remove(windowPath); rmErr != nil {
			t.logger.Warn(ctx, "Failed to remove sub-window %s: %v", windowPath, rmErr)
		}
		if err != nil {
			return "", err
		}
		if text != "" {
			texts = append(texts, text)
		}
	}

	return strings.Join(texts, " "), nil
}

func (t *implTranscriber) translate(ctx context.Context, audioPath string) (string, error) {
	resp, err := t.client.CreateTranslation(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
		Prompt:   translatePrompt,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
