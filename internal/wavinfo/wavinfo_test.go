package wavinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes a mono 16-bit PCM file with the given number of
// samples at the given rate.
func writeWAV(t *testing.T, path string, sampleRate, samples int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tone.wav")

	// 2 seconds of 16kHz mono 16-bit PCM.
	writeWAV(t, path, 16000, 32000)

	info, err := NewProber().Probe(path)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", info.SampleRate)
	}
	if info.Channels != 1 {
		t.Errorf("Channels = %d, want 1", info.Channels)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
	if info.ByteRate != 32000 {
		t.Errorf("ByteRate = %d, want 32000", info.ByteRate)
	}
	if info.PCMBytes != 64000 {
		t.Errorf("PCMBytes = %d, want 64000", info.PCMBytes)
	}
	if info.Duration != 2*time.Second {
		t.Errorf("Duration = %s, want 2s", info.Duration)
	}
}

func TestProbeMissingFile(t *testing.T) {
	if _, err := NewProber().Probe(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Probe() should fail for a missing file")
	}
}

func TestProbeNotWAV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewProber().Probe(path); err == nil {
		t.Error("Probe() should fail for a non-WAV file")
	}
}
