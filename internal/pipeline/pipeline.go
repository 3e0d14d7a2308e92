package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/call-digest/internal/assembler"
	"github.com/nguyentantai21042004/call-digest/internal/dispatcher"
	"github.com/nguyentantai21042004/call-digest/internal/splitter"
	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
)

// TranscribeAndSummarize runs: resolve input -> normalize -> split ->
// dispatch transcription -> assemble -> summarize. The request temp
// directory is removed on every exit path.
func (p *implPipeline) TranscribeAndSummarize(ctx context.Context, req Request) (*summarizer.Summary, error) {
	startTime := time.Now()

	if req.Concurrency < 1 {
		req.Concurrency = 1
	}
	if req.ChunkLengthSec <= 0 {
		req.ChunkLengthSec = p.cfg.Pipeline.ChunkLengthSec
	}

	if err := os.MkdirAll(req.TempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer p.removeTempDir(ctx, req.TempDir)

	source := req.Source
	if req.IsURL {
		downloaded, err := p.downloader.Fetch(ctx, req.Source, req.TempDir)
		if err != nil {
			return nil, err
		}
		source = downloaded
	}

	audioPath, err := p.normalizer.Normalize(ctx, source, req.TempDir)
	if err != nil {
		return nil, err
	}

	chunks, err := p.splitter.Split(ctx, audioPath, req.TempDir, req.ChunkLengthSec)
	if err != nil {
		return nil, err
	}

	t := p.newTranscriber(req.APIKey)
	d := dispatcher.New(t, p.logger, req.Concurrency)
	results := d.Dispatch(ctx, chunks)

	// Transcription is done with the audio artifacts at this point.
	p.removeTranscriptionArtifacts(ctx, audioPath, chunks)

	transcript, err := assembler.Assemble(results)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Transcribed %d/%d chunks in %s (%d chars)",
		countSucceeded(results), len(chunks), time.Since(startTime).Round(time.Second), len(transcript))

	s := p.newSummarizer(req.APIKey)
	summary, err := s.Summarize(ctx, transcript)
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "Pipeline completed in %s", time.Since(startTime).Round(time.Second))
	return summary, nil
}

// removeTranscriptionArtifacts deletes the chunks directory and the
// canonical audio once no stage needs them. Best effort.
func (p *implPipeline) removeTranscriptionArtifacts(ctx context.Context, audioPath string, chunks []splitter.Chunk) {
	if len(chunks) > 0 {
		chunksDir := filepath.Dir(chunks[0].Path)
		if err := os.RemoveAll(chunksDir); err != nil {
			p.logger.Warn(ctx, "Could not clean up chunks dir %s: %v", chunksDir, err)
		}
	}
	if err := os.Remove(audioPath); err != nil {
		p.logger.Warn(ctx, "Could not clean up canonical audio %s: %v", audioPath, err)
	}
}

func (p *implPipeline) removeTempDir(ctx context.Context, tempDir string) {
	if err := os.RemoveAll(tempDir); err != nil {
		p.logger.Warn(ctx, "Could not clean up temp dir %s: %v", tempDir, err)
	}
}

func countSucceeded(results []transcriber.Result) int {
	n := 0
	for _, r := range results {
		if !r.Failed() && strings.TrimSpace(r.Transcript) != "" {
			n++
		}
	}
	return n
}
