// SPDX-License-Identifier: EPL-2.0

//go:build cgo

package opus

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"gopkg.in/hraban/opus.v2"
)

type source struct {
	stream   *opus.Stream
	channels int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 5760 * s.channels } // 120 ms at 48 kHz

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	// ReadFloat32 counts samples per channel
	n, err := s.stream.ReadFloat32(dst)
	if err == io.EOF {
		return n * s.channels, io.EOF
	}
	if err != nil {
		return n * s.channels, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n * s.channels, nil
}

// Decoder reads Ogg Opus through libopusfile. Output is always 48 kHz.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bufio.NewReaderSize(r, headPeek)

	channels, err := peekChannels(br)
	if err != nil {
		return nil, err
	}

	stream, err := opus.NewStream(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOpusStream, err)
	}

	return &source{
		stream:   stream,
		channels: channels,
	}, nil
}
