// Package assembler restores chunk order and merges partial transcripts
// into one document.
package assembler

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/call-digest/internal/splitter"
	"github.com/nguyentantai21042004/call-digest/internal/transcriber"
)

// ErrNoTranscript is the terminal failure for total per-chunk failure:
// every chunk errored or came back empty.
var ErrNoTranscript = errors.New("no transcript was generated from any audio chunk")

// Assemble sorts results by chunk index and joins the non-empty
// transcripts with single spaces. Failed and empty chunks contribute
// nothing. Completion order of the input is irrelevant.
func Assemble(results []transcriber.Result) (string, error) {
	sorted := make([]transcriber.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortIndex(sorted[i]) < sortIndex(sorted[j])
	})

	var parts []string
	for _, r := range sorted {
		if r.Failed() || r.Transcript == "" {
			continue
		}
		parts = append(parts, r.Transcript)
	}

	if len(parts) == 0 {
		return "", ErrNoTranscript
	}

	return strings.Join(parts, " "), nil
}

// sortIndex prefers the first-class index carried since chunk creation.
// A zero index may be a legacy result rehydrated from a bare file name,
// so the composite id is parsed as a fallback.
func sortIndex(r transcriber.Result) int {
	if r.Index != 0 {
		return r.Index
	}
	return ParseChunkIndex(r.ChunkID)
}

// ParseChunkIndex extracts the numeric index from a composite chunk id
// like "call_chunk_12". Ids without the delimiter or with a non-numeric
// tail sort as index 0; that fallback is kept for results rehydrated
// from bare file names where the index field is absent.
func ParseChunkIndex(chunkID string) int {
	pos := strings.LastIndex(chunkID, splitter.ChunkDelimiter)
	if pos < 0 {
		return 0
	}

	index, err := strconv.Atoi(chunkID[pos+len(splitter.ChunkDelimiter):])
	if err != nil {
		return 0
	}
	return index
}
