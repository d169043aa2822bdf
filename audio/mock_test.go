// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
)

// mockSource generates audio from a waveform function.
type mockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // frames to generate
	generated    int
	waveform     func(sample int, channel int) float32
	failAfter    int // frames before ReadSamples fails; 0 disables
	closed       bool
}

var errMockRead = errors.New("mock read failure")

func newMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *mockSource {
	return &mockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newSilentSource(sampleRate, channels, totalSamples int) *mockSource {
	return newConstantSource(sampleRate, channels, totalSamples, 0)
}

func newSineSource(sampleRate, channels, totalSamples int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

func newConstantSource(sampleRate, channels, totalSamples int, value float32) *mockSource {
	return newMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error {
	m.closed = true
	return nil
}

func (m *mockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter > 0 && m.generated >= m.failAfter {
		return 0, errMockRead
	}
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// drain reads src to the end with reads of bufSize samples.
func drain(src Source, bufSize int) ([]float32, error) {
	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
	}
}

// trickleSource hands out at most perCall values per read, so frames arrive
// in pieces. With stall set, every other read returns (0, nil).
type trickleSource struct {
	Source
	perCall int
	stall   bool
	calls   int
	pending []float32
	eof     bool
}

func (s *trickleSource) ReadSamples(dst []float32) (int, error) {
	s.calls++
	if s.stall && s.calls%2 == 0 {
		return 0, nil
	}

	if len(s.pending) == 0 && !s.eof {
		buf := make([]float32, 64*s.Channels())
		n, err := s.Source.ReadSamples(buf)
		s.pending = buf[:n]
		if err == io.EOF {
			s.eof = true
		} else if err != nil {
			return 0, err
		}
	}
	if len(s.pending) == 0 {
		return 0, io.EOF
	}

	n := copy(dst[:min(len(dst), s.perCall)], s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// stuckSource never makes progress.
type stuckSource struct{ Source }

func (stuckSource) ReadSamples([]float32) (int, error) { return 0, nil }
