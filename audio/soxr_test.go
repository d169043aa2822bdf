// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"strconv"
	"testing"
)

func TestSoxrPadding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		srcRate, dstRate int
	}{
		{44100, 16000},
		{48000, 16000},
		{22050, 16000},
		{8000, 16000},
		{11025, 16000},
		{44101, 16000},
	}

	for _, tt := range tests {
		in, out := soxrPadding(tt.srcRate, tt.dstRate)

		if in < tt.srcRate/soxrPadDivisor {
			t.Errorf("soxrPadding(%d, %d) in = %d, want at least %d", tt.srcRate, tt.dstRate, in, tt.srcRate/soxrPadDivisor)
		}
		if int64(in)*int64(tt.dstRate) != int64(out)*int64(tt.srcRate) {
			t.Errorf("soxrPadding(%d, %d) = %d, %d: not on the output grid", tt.srcRate, tt.dstRate, in, out)
		}
	}
}

func renderMono(t *testing.T, method Method, rate int, samples []float32) []float32 {
	t.Helper()

	out, err := NewRenderer(TargetRate, method).Render(SampleBuffer{Samples: samples, SampleRate: rate, Channels: 1})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out.Samples
}

func TestRenderer_StepTiming(t *testing.T) {
	t.Parallel()

	// 0 for the first half second, 0.5 after; the edge sits on output 8000.
	in := make([]float32, 44100)
	for i := 22050; i < len(in); i++ {
		in[i] = 0.5
	}

	for _, method := range []Method{MethodCubic, MethodSoxr} {
		t.Run(method.String(), func(t *testing.T) {
			t.Parallel()

			out := renderMono(t, method, 44100, in)

			cross := -1
			for i, s := range out {
				if s > 0.25 {
					cross = i
					break
				}
			}
			if cross < 7998 || cross > 8002 {
				t.Errorf("step crossed 0.25 at output %d, want 8000 ±2", cross)
			}

			// 10 ms before the end, clear of the closing edge
			if s := out[len(out)-160]; math.Abs(float64(s)-0.5) > 0.02 {
				t.Errorf("sample %d = %v, want 0.5: tail not filled with signal", len(out)-160, s)
			}
		})
	}
}

func TestRenderer_LeadingBurstKept(t *testing.T) {
	t.Parallel()

	// 5 ms of 0.5 at t=0: 80 output samples of 0.25 energy each.
	in := make([]float32, 44100)
	for i := range 44100 * 5 / 1000 {
		in[i] = 0.5
	}

	for _, method := range []Method{MethodCubic, MethodSoxr} {
		t.Run(method.String(), func(t *testing.T) {
			t.Parallel()

			out := renderMono(t, method, 44100, in)

			var energy float64
			for _, s := range out {
				energy += float64(s) * float64(s)
			}
			if energy < 16 || energy > 24 {
				t.Errorf("burst energy = %.3f, want about 20", energy)
			}
		})
	}
}

func TestRenderer_SoxrMatchesSine(t *testing.T) {
	t.Parallel()

	const (
		freq = 440.0
		amp  = 0.5
		edge = TargetRate / 100 // 10 ms of filter ringing at each end
	)

	for _, rate := range []int{44100, 48000, 22050, 8000} {
		t.Run(strconv.Itoa(rate), func(t *testing.T) {
			t.Parallel()

			in := make([]float32, rate)
			for i := range in {
				in[i] = float32(amp * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
			}

			out := renderMono(t, MethodSoxr, rate, in)
			if len(out) != TargetRate {
				t.Fatalf("Render() produced %d samples, want %d", len(out), TargetRate)
			}

			// one sample of misalignment is an error of about 0.086
			var maxErr float64
			for i := edge; i < len(out)-edge; i++ {
				ideal := amp * math.Sin(2*math.Pi*freq*float64(i)/TargetRate)
				maxErr = max(maxErr, math.Abs(float64(out[i])-ideal))
			}
			if maxErr > 0.06 {
				t.Errorf("max deviation from ideal sine = %.4f, want <= 0.06", maxErr)
			}
		})
	}
}

func TestRenderer_SoxrSingleFrame(t *testing.T) {
	t.Parallel()

	out := renderMono(t, MethodSoxr, 48000, []float32{0.7})
	if len(out) != 1 {
		t.Fatalf("Render() produced %d samples, want 1", len(out))
	}
	if out[0] <= 0.1 {
		t.Errorf("Render() = %v, want the frame to survive filtering", out)
	}
}
