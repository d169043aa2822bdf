// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestResampler_Length(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		srcRate  int
		dstRate  int
		channels int
		frames   int
	}{
		{"44.1k to 16k", 44100, 16000, 1, 44100},
		{"48k to 16k", 48000, 16000, 2, 48000},
		{"8k to 16k", 8000, 16000, 1, 8000},
		{"22.05k to 16k", 22050, 16000, 1, 12345},
		{"equal", 16000, 16000, 1, 5000},
		{"short", 44100, 16000, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSineSource(tt.srcRate, tt.channels, tt.frames, 440)
			out, err := drain(NewResampler(src, tt.dstRate), 1024*tt.channels)
			if err != nil {
				t.Fatalf("drain() error = %v", err)
			}

			got := len(out) / tt.channels
			want := OutputLength(tt.frames, tt.srcRate, tt.dstRate)
			// position accumulates in floating point
			if got < want-1 || got > want+1 {
				t.Errorf("resampled %d frames, want %d (±1)", got, want)
			}
		})
	}
}

func TestResampler_SingleFrame(t *testing.T) {
	t.Parallel()

	src := newConstantSource(48000, 1, 1, 0.25)
	out, err := drain(NewResampler(src, 16000), 16)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("resampled %d samples, want 1", len(out))
	}
	if math.Abs(float64(out[0])-0.25) > 1e-6 {
		t.Errorf("sample = %v, want 0.25", out[0])
	}
}

func TestResampler_PartialFrameReads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		perCall int
		stall   bool
	}{
		{"one value per read", 1, false},
		{"three values per read", 3, false},
		{"one value with empty reads", 1, true},
	}

	want, err := drain(NewResampler(newSineSource(32000, 2, 3200, 440), 16000), 512)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if frames := len(want) / 2; frames < 1599 || frames > 1601 {
		t.Fatalf("resampled %d frames, want about 1600", frames)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &trickleSource{Source: newSineSource(32000, 2, 3200, 440), perCall: tt.perCall, stall: tt.stall}
			got, err := drain(NewResampler(src, 16000), 512)
			if err != nil {
				t.Fatalf("drain() error = %v", err)
			}

			if len(got) != len(want) {
				t.Fatalf("resampled %d samples, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestResampler_NoProgress(t *testing.T) {
	t.Parallel()

	src := stuckSource{newSilentSource(44100, 1, 10)}
	_, err := drain(NewResampler(src, 16000), 64)
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("drain() error = %v, want %v", err, io.ErrNoProgress)
	}
}

func TestResampler_Empty(t *testing.T) {
	t.Parallel()

	out, err := drain(NewResampler(newSilentSource(44100, 2, 0), 16000), 64)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(out) != 0 {
		t.Errorf("resampled %d samples, want 0", len(out))
	}
}

func TestResampler_FirstSampleAligned(t *testing.T) {
	t.Parallel()

	// a ramp exposes an off-by-one on the first output
	src := newMockSource(16000, 1, 100, func(sample, _ int) float32 {
		return float32(sample) / 100
	})

	out, err := drain(NewResampler(src, 16000), 10)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	if len(out) != 100 {
		t.Fatalf("resampled %d samples, want 100", len(out))
	}
	for i, s := range out {
		if math.Abs(float64(s)-float64(i)/100) > 1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, s, float64(i)/100)
		}
	}
}

func TestResampler_PreservesChannels(t *testing.T) {
	t.Parallel()

	src := newMockSource(44100, 2, 4410, func(_, channel int) float32 {
		if channel == 0 {
			return 0.5
		}
		return -0.5
	})
	r := NewResampler(src, 16000)

	if r.Channels() != 2 || r.SampleRate() != 16000 {
		t.Fatalf("format = %d Hz/%d ch, want 16000 Hz/2 ch", r.SampleRate(), r.Channels())
	}

	out, err := drain(r, 512)
	if err != nil {
		t.Fatalf("drain() error = %v", err)
	}
	for i := 0; i < len(out); i += 2 {
		if math.Abs(float64(out[i])-0.5) > 1e-5 || math.Abs(float64(out[i+1])+0.5) > 1e-5 {
			t.Fatalf("frame %d = [%v %v], want [0.5 -0.5]", i/2, out[i], out[i+1])
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	r := NewResampler(newSilentSource(44100, 2, 100), 16000)

	_, err := r.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}

func TestResampler_SourceError(t *testing.T) {
	t.Parallel()

	src := newSineSource(44100, 1, 10000, 440)
	src.failAfter = 500

	_, err := drain(NewResampler(src, 16000), 256)
	if !errors.Is(err, errMockRead) {
		t.Errorf("drain() error = %v, want %v", err, errMockRead)
	}
}

func TestResampler_Close(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 1, 10)
	if err := NewResampler(src, 16000).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkResampler(b *testing.B) {
	dst := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		r := NewResampler(newSineSource(44100, 2, 44100, 440), 16000)
		for {
			if _, err := r.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
