// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 {
		t.Errorf("MonoMixer.Channels() = %d, want 1", mixer.Channels())
	}
	if mixer.SampleRate() != 8000 {
		t.Errorf("MonoMixer.SampleRate() = %d, want 8000", mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	// Left is 0.4, right is 0.6: the average is 0.5.
	src := newMockSource(8000, 2, 100, func(sample int, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}

	for i := range n {
		if math.Abs(float64(buf[i])-0.5) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_QuadToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(16000, 4, 50, func(sample int, channel int) float32 {
		return float32(channel) * 0.2 // 0.0, 0.2, 0.4, 0.6 -> mean 0.3
	})
	mixer := NewMonoMixer(src)

	buf := make([]float32, 50)
	n, _ := mixer.ReadSamples(buf)
	if n != 50 {
		t.Fatalf("ReadSamples() n = %d, want 50", n)
	}
	for i := range n {
		if math.Abs(float64(buf[i])-0.3) > 1e-6 {
			t.Errorf("buf[%d] = %v, want 0.3", i, buf[i])
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 10, 0.1))
	n, err := mixer.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}
