// Package dispatcher fans the transcriber out over all chunks under a
// bounded number of workers and collects every settled result.
package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/splitter"
	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
)

type Dispatcher interface {
	// Dispatch runs the transcriber over all chunks and returns once
	// every task has settled. Completion order is unconstrained; the
	// assembler re-sorts by chunk index.
	Dispatch(ctx context.Context, chunks []splitter.Chunk) []transcriber.Result
}

type implDispatcher struct {
	transcriber transcriber.Transcriber
	logger      logger.Logger
	concurrency int
}

// New creates a Dispatcher with the given concurrency ceiling (min 1).
func New(t transcriber.Transcriber, log logger.Logger, concurrency int) Dispatcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &implDispatcher{
		transcriber: t,
		logger:      log,
		concurrency: concurrency,
	}
}

func (d *implDispatcher) Dispatch(ctx context.Context, chunks []splitter.Chunk) []transcriber.Result {
	// One slot per chunk; workers write disjoint indices so no lock is
	// needed around the collection.
	slots := make([]*transcriber.Result, len(chunks))

	sem := make(chan struct{}, d.concurrency)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(slot int, c splitter.Chunk) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			// A panicking task drops its slot instead of aborting the run.
			defer func() {
				if r := recover(); r != nil {
					d.logger.Error(ctx, "Error processing chunk %d: %v", c.Index, r)
				}
			}()

			start := time.Now()
			result := d.transcriber.Transcribe(ctx, c)
			result.Elapsed = time.Since(start)

			if result.Failed() {
				d.logger.Warn(ctx, "Chunk %d failed after %s: %s", c.Index, result.Elapsed, result.Err)
			} else {
				d.logger.Debug(ctx, "Chunk %d transcribed in %s", c.Index, result.Elapsed)
			}

			slots[slot] = &result
		}(i, chunk)
	}

	wg.Wait()

	results := make([]transcriber.Result, 0, len(chunks))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}
