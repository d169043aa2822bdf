// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TargetRate is the sample rate of the normalized output, in Hz.
const TargetRate = 16000

// Method selects the rate conversion algorithm used by a Renderer.
type Method int

const (
	// MethodCubic streams through Resampler (Catmull-Rom interpolation).
	MethodCubic Method = iota
	// MethodSoxr uses the polyphase FIR resampler.
	MethodSoxr
)

func (m Method) String() string {
	switch m {
	case MethodCubic:
		return "cubic"
	case MethodSoxr:
		return "soxr"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "cubic" or "soxr" (case-insensitive) to a Method.
// An empty string selects MethodCubic.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cubic":
		return MethodCubic, nil
	case "soxr":
		return MethodSoxr, nil
	default:
		return MethodCubic, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// OutputLength returns the number of frames a render job at dstRate holds
// for frames source frames at srcRate: ceil(frames * dstRate / srcRate).
func OutputLength(frames, srcRate, dstRate int) int {
	if frames <= 0 || srcRate <= 0 || dstRate <= 0 {
		return 0
	}
	num := int64(frames) * int64(dstRate)
	return int((num + int64(srcRate) - 1) / int64(srcRate))
}

// Renderer down-mixes a SampleBuffer to mono and converts it to a fixed
// sample rate. The output always holds exactly OutputLength frames: the
// interpolator result is truncated or zero-filled at the tail to fit.
//
// A Renderer holds no state between calls and is safe for concurrent use.
type Renderer struct {
	rate   int
	method Method
}

func NewRenderer(rate int, method Method) *Renderer {
	return &Renderer{rate: rate, method: method}
}

func (r *Renderer) Rate() int      { return r.rate }
func (r *Renderer) Method() Method { return r.method }

// Render produces a mono SampleBuffer at the renderer's rate.
// Errors wrap ErrRenderFailure.
func (r *Renderer) Render(buf SampleBuffer) (SampleBuffer, error) {
	if r.rate <= 0 {
		return SampleBuffer{}, fmt.Errorf("%w: %w: target %d", ErrRenderFailure, ErrInvalidSampleRate, r.rate)
	}
	if err := buf.Validate(); err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	n := OutputLength(buf.Frames(), buf.SampleRate, r.rate)
	out := SampleBuffer{
		Samples:    make([]float32, n),
		SampleRate: r.rate,
		Channels:   1,
	}
	if n == 0 {
		return out, nil
	}

	mono, err := downmix(buf)
	if err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	var rendered []float32
	switch {
	case buf.SampleRate == r.rate:
		rendered = mono
	case r.method == MethodCubic:
		rendered, err = resampleCubic(mono, buf.SampleRate, r.rate, n)
	case r.method == MethodSoxr:
		rendered, err = resampleSoxr(mono, buf.SampleRate, r.rate, n)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownMethod, r.method)
	}
	if err != nil {
		return SampleBuffer{}, fmt.Errorf("%w: %w", ErrRenderFailure, err)
	}

	copy(out.Samples, rendered)

	return out, nil
}

func downmix(buf SampleBuffer) ([]float32, error) {
	if buf.Channels == 1 {
		return buf.Samples, nil
	}

	mixed, err := ReadAll(context.Background(), NewMonoMixer(buf.Source()))
	if err != nil {
		return nil, err
	}

	return mixed.Samples, nil
}

func resampleCubic(mono []float32, srcRate, dstRate, want int) ([]float32, error) {
	src := SampleBuffer{Samples: mono, SampleRate: srcRate, Channels: 1}.Source()

	// one spare frame absorbs rounding in the position accumulator
	out := make([]float32, want+1)
	res := NewResampler(src, dstRate)

	total := 0
	for total < len(out) {
		n, err := res.ReadSamples(out[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return out[:total], nil
}
