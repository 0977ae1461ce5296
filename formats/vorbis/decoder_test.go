// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audrt/audio"
)

// fakeOggReader feeds canned interleaved samples the way oggvorbis.Reader
// would.
type fakeOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	readErr    error
}

func (f *fakeOggReader) SampleRate() int { return f.sampleRate }
func (f *fakeOggReader) Channels() int   { return f.channels }

func (f *fakeOggReader) Read(p []float32) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(p, f.samples[f.offset:])
	f.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	data := []byte("this is not an ogg container")
	if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
		t.Error("Decode() on garbage input succeeded, want error")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{dec: &fakeOggReader{}, sampleRate: 48000, channels: 2}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{-0.5, 0.5, -0.25, 0.25, -1, 1}
	src := &source{
		dec:        &fakeOggReader{channels: 2, samples: samples},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() = %d, want %d", n, len(samples))
	}
	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_MisalignedDst(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOggReader{channels: 2, samples: make([]float32, 8)},
		sampleRate: 48000,
		channels:   2,
	}

	dst := make([]float32, 5) // not a multiple of 2 channels
	if _, err := src.ReadSamples(dst); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want audio.ErrInvalidDstSize", err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOggReader{channels: 1, samples: []float32{0.1, 0.2}},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 2)
	if n, err := src.ReadSamples(dst); n != 2 || err != nil {
		t.Fatalf("ReadSamples() = %d, %v, want 2, nil", n, err)
	}
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_PropagatesError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &fakeOggReader{channels: 1, readErr: io.ErrUnexpectedEOF},
		sampleRate: 8000,
		channels:   1,
	}

	dst := make([]float32, 4)
	if _, err := src.ReadSamples(dst); err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want wrapped read failure", err)
	}
}
