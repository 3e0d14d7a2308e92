package dispatcher

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/call-digest/internal/logger"
	"github.com/nguyentantai21042004/call-digest/internal/splitter"
	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
)

// countingTranscriber tracks the maximum number of in-flight calls.
type countingTranscriber struct {
	inFlight int32
	maxSeen  int32
	delay    time.Duration
	panicAt  int // index that panics; -1 disables
}

func (c *countingTranscriber) Transcribe(ctx context.Context, chunk splitter.Chunk) transcriber.Result {
	if chunk.Index == c.panicAt {
		panic("boom")
	}

	n := atomic.AddInt32(&c.inFlight, 1)
	for {
		max := atomic.LoadInt32(&c.maxSeen)
		if n <= max || atomic.CompareAndSwapInt32(&c.maxSeen, max, n) {
			break
		}
	}
	time.Sleep(c.delay)
	atomic.AddInt32(&c.inFlight, -1)

	return transcriber.Result{
		Index:      chunk.Index,
		ChunkID:    fmt.Sprintf("call_chunk_%d", chunk.Index),
		Transcript: fmt.Sprintf("text %d", chunk.Index),
	}
}

func makeChunks(n int) []splitter.Chunk {
	chunks := make([]splitter.Chunk, n)
	for i := range chunks {
		chunks[i] = splitter.Chunk{Index: i, Path: fmt.Sprintf("call_chunk_%d.wav", i)}
	}
	return chunks
}

func testLogger() logger.Logger {
	return logger.New("error")
}

func TestDispatchCollectsAllResults(t *testing.T) {
	tr := &countingTranscriber{panicAt: -1}
	d := New(tr, testLogger(), 3)

	results := d.Dispatch(context.Background(), makeChunks(10))

	if len(results) != 10 {
		t.Fatalf("result count = %d, want 10", len(results))
	}

	seen := make(map[int]bool)
	for _, r := range results {
		seen[r.Index] = true
	}
	for i := 0; i < 10; i++ {
		if !seen[i] {
			t.Errorf("missing result for chunk %d", i)
		}
	}
}

func TestDispatchBoundsConcurrency(t *testing.T) {
	tr := &countingTranscriber{delay: 20 * time.Millisecond, panicAt: -1}
	d := New(tr, testLogger(), 3)

	d.Dispatch(context.Background(), makeChunks(12))

	if max := atomic.LoadInt32(&tr.maxSeen); max > 3 {
		t.Errorf("max in-flight = %d, exceeds concurrency ceiling 3", max)
	}
}

func TestDispatchClampsConcurrencyToOne(t *testing.T) {
	tr := &countingTranscriber{delay: 5 * time.Millisecond, panicAt: -1}
	d := New(tr, testLogger(), 0)

	d.Dispatch(context.Background(), makeChunks(5))

	if max := atomic.LoadInt32(&tr.maxSeen); max > 1 {
		t.Errorf("max in-flight = %d, want serial execution", max)
	}
}

func TestDispatchRecordsLatency(t *testing.T) {
	tr := &countingTranscriber{delay: 10 * time.Millisecond, panicAt: -1}
	d := New(tr, testLogger(), 2)

	results := d.Dispatch(context.Background(), makeChunks(4))

	for _, r := range results {
		if r.Elapsed <= 0 {
			t.Errorf("chunk %d has no recorded latency", r.Index)
		}
	}
}

func TestDispatchPanickingTaskIsDropped(t *testing.T) {
	tr := &countingTranscriber{panicAt: 2}
	d := New(tr, testLogger(), 4)

	results := d.Dispatch(context.Background(), makeChunks(5))

	if len(results) != 4 {
		t.Fatalf("result count = %d, want 4 (panicking chunk dropped)", len(results))
	}
	for _, r := range results {
		if r.Index == 2 {
			t.Error("panicking chunk must be absent from the result set")
		}
	}
}
