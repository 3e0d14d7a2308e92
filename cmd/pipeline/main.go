package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/call-digest/internal/config"
	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/pipeline"
	"github.com/nguyentantai21042004/call-digest/internal/report"
	"github.com/nguyentantai21042004/call-digest/internal/summarizer"
	"github.com/nguyentantai21042004/call-digest/internal/watcher"
	"github.com/nguyentantai21042004/call-digest/pkg/executor"
)

// response is the JSON shape handed to the caller: either a summary or
// an error, with the raw model text kept when JSON parsing failed.
type response struct {
	Summary    *summarizer.Summary `json:"summary,omitempty"`
	Error      string              `json:"error,omitempty"`
	RawSummary string              `json:"raw_summary,omitempty"`
}

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config file")
		source     = flag.String("source", "", "media file path or URL to process")
		isURL      = flag.Bool("url", false, "treat -source as a URL")
		watchMode  = flag.Bool("watch", false, "watch the configured input directory")
	)
	flag.Parse()

	ctx := context.Background()

	// Missing .env is fine; the variable may come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	apiKey := os.Getenv("OPENAI_API_KEY")

	p := pipeline.New(cfg, executor.New(), log)

	if *watchMode {
		if err := runWatch(ctx, cfg, p, apiKey, log); err != nil && !errors.Is(err, context.Canceled) {
			log.Error(ctx, "Watch mode failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if *source == "" {
		fmt.Fprintln(os.Stderr, "Usage: pipeline -source <path|url> [-url] [-config config.yaml]")
		os.Exit(2)
	}

	resp := runOnce(ctx, cfg, p, apiKey, *source, *isURL)
	out, _ := json.MarshalIndent(resp, "", "  ")
	fmt.Println(string(out))

	if resp.Error != "" {
		os.Exit(1)
	}
}

// runOnce processes a single input and converts the outcome into the
// response JSON shape.
func runOnce(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, apiKey, source string, isURL bool) response {
	summary, err := p.TranscribeAndSummarize(ctx, pipeline.Request{
		Source:         source,
		IsURL:          isURL,
		TempDir:        requestTempDir(cfg),
		Concurrency:    cfg.Performance.Concurrency,
		ChunkLengthSec: cfg.Pipeline.ChunkLengthSec,
		APIKey:         apiKey,
	})
	if err != nil {
		resp := response{Error: err.Error()}
		var parseErr *summarizer.ParseError
		if errors.As(err, &parseErr) {
			resp.RawSummary = parseErr.Raw
		}
		return resp
	}
	return response{Summary: summary}
}

// runWatch processes every media file dropped into paths.input, writing
// a summary JSON and docx report per file into paths.output.
func runWatch(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, apiKey string, log logger.Logger) error {
	if err := cfg.ValidateWatchPaths(); err != nil {
		return err
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	handler := func(ctx context.Context, filePath string) error {
		return processFile(ctx, cfg, p, apiKey, filePath, log)
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrentFiles)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline ready. Monitoring: %s", cfg.Paths.Input)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

func processFile(ctx context.Context, cfg *config.Config, p pipeline.Pipeline, apiKey, filePath string, log logger.Logger) error {
	summary, err := p.TranscribeAndSummarize(ctx, pipeline.Request{
		Source:         filePath,
		TempDir:        requestTempDir(cfg),
		Concurrency:    cfg.Performance.Concurrency,
		ChunkLengthSec: cfg.Pipeline.ChunkLengthSec,
		APIKey:         apiKey,
	})
	if err != nil {
		return err
	}

	base := filepath.Base(filePath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	data, err := json.MarshalIndent(response{Summary: summary}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	jsonPath := filepath.Join(cfg.Paths.Output, name+".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write summary JSON: %w", err)
	}

	docxPath := filepath.Join(cfg.Paths.Output, name+".docx")
	if err := report.WriteDocx(name, summary, docxPath); err != nil {
		log.Warn(ctx, "Failed to write docx report for %s: %v", name, err)
	}

	archived := filepath.Join(cfg.Paths.Archived, base)
	if err := os.Rename(filePath, archived); err != nil {
		log.Warn(ctx, "Failed to archive %s: %v", filePath, err)
	}

	log.Info(ctx, "Processed %s -> %s", filePath, jsonPath)
	return nil
}

// requestTempDir returns a fresh request-scoped directory under the
// configured temp root.
func requestTempDir(cfg *config.Config) string {
	return filepath.Join(cfg.Pipeline.TempDir, "run-"+uuid.NewString()[:8])
}
