package wavinfo

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// Info describes the PCM layout of a canonical WAV file.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	ByteRate   int
	PCMBytes   int64
	Duration   time.Duration
}

// Prober reads WAV metadata without decoding samples.
type Prober interface {
	Probe(path string) (Info, error)
}

// NewProber creates a Prober backed by go-audio's wav decoder.
func NewProber() Prober {
	return fileProber{}
}

type fileProber struct{}

func (fileProber) Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open wav file: %w", err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return Info{}, fmt.Errorf("read wav header: %w", err)
	}
	if d.SampleRate == 0 || d.NumChans == 0 || d.BitDepth == 0 {
		return Info{}, fmt.Errorf("%s: malformed wav header", path)
	}

	if err := d.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("locate pcm chunk: %w", err)
	}

	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		ByteRate:   int(d.AvgBytesPerSec),
		PCMBytes:   d.PCMLen(),
	}
	if info.ByteRate == 0 {
		info.ByteRate = info.SampleRate * info.Channels * info.BitDepth / 8
	}
	if info.ByteRate > 0 {
		info.Duration = time.Duration(float64(info.PCMBytes) / float64(info.ByteRate) * float64(time.Second))
	}

	return info, nil
}
