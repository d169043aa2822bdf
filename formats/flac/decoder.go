// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameParser is the part of flac.Stream the source needs, for testing.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	scale      float32

	// decoded samples of the current frame, interleaved
	pending []float32
	pos     int
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// fill decodes the next frame into pending.
func (s *source) fill() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		return err
	}

	block := int(f.BlockSize)
	if cap(s.pending) < block*s.channels {
		s.pending = make([]float32, block*s.channels)
	}
	s.pending = s.pending[:block*s.channels]
	s.pos = 0

	for ch, sub := range f.Subframes[:s.channels] {
		for i, v := range sub.Samples[:block] {
			s.pending[i*s.channels+ch] = float32(v) * s.scale
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	written := 0

	for written < len(dst) {
		if s.pos >= len(s.pending) {
			if s.eof {
				break
			}
			if err := s.fill(); err != nil {
				if err == io.EOF {
					s.eof = true
					break
				}
				return written, fmt.Errorf("%w", err)
			}
		}

		n := copy(dst[written:], s.pending[s.pos:])
		s.pos += n
		written += n
	}

	if s.eof && s.pos >= len(s.pending) {
		return written, io.EOF
	}

	return written, nil
}

// Decoder reads native FLAC streams through mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacStream, err)
	}

	info := stream.Info
	if info.SampleRate == 0 || info.NChannels == 0 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d Hz, %d channels", ErrNotFlacStream, info.SampleRate, info.NChannels)
	}

	bits := int(info.BitsPerSample)
	if bits < 4 || bits > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bits)
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      1 / float32(int64(1)<<(bits-1)),
	}, nil
}
