// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"fmt"
	"io"
	"time"
)

// SampleBuffer is a fully decoded clip held in memory.
// Samples are interleaved when Channels > 1.
type SampleBuffer struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Frames returns the number of sample frames (samples per channel).
func (b SampleBuffer) Frames() int {
	if b.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playing time of the buffer.
func (b SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

func (b SampleBuffer) Validate() error {
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, b.Channels)
	}
	if len(b.Samples)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrPartialFrame, len(b.Samples), b.Channels)
	}
	return nil
}

// Source returns a Source that streams the buffer's samples.
// The buffer is not copied.
func (b SampleBuffer) Source() Source {
	return &bufferSource{buf: b}
}

// ReadAll drains src into a SampleBuffer. It does not close src.
// ctx is checked between reads.
func ReadAll(ctx context.Context, src Source) (SampleBuffer, error) {
	channels := src.Channels()
	if channels <= 0 {
		return SampleBuffer{}, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	bufSize := src.BufSize()
	if bufSize < channels {
		bufSize = 4096
	}
	// keep reads frame aligned
	bufSize -= bufSize % channels

	out := SampleBuffer{
		Samples:    make([]float32, 0, bufSize),
		SampleRate: src.SampleRate(),
		Channels:   channels,
	}
	buf := make([]float32, bufSize)

	for {
		if err := ctx.Err(); err != nil {
			return SampleBuffer{}, err
		}

		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Samples = append(out.Samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return SampleBuffer{}, fmt.Errorf("%w", err)
		}
	}

	// A decoder may stop mid-frame on a truncated stream.
	out.Samples = out.Samples[:out.Frames()*channels]

	return out, nil
}

type bufferSource struct {
	buf SampleBuffer
	pos int
}

func (s *bufferSource) SampleRate() int { return s.buf.SampleRate }
func (s *bufferSource) Channels() int   { return s.buf.Channels }
func (s *bufferSource) BufSize() int    { return 4096 }
func (s *bufferSource) Close() error    { return nil }

func (s *bufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Samples[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Samples) {
		return n, io.EOF
	}

	return n, nil
}
