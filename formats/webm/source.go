// SPDX-License-Identifier: EPL-2.0

package webm

import (
	"fmt"
	"io"

	"github.com/ik5/audnorm/formats/opus"
)

// maxFrame is the longest Opus frame, 120 ms at 48 kHz, per channel.
const maxFrame = 5760

// packetDecoder is the part of *opus.Decoder the source uses.
type packetDecoder interface {
	DecodeFloat32(data []byte, pcm []float32) (int, error)
}

// source decodes one packet at a time and hands out interleaved samples.
type source struct {
	dec      packetDecoder
	packets  [][]byte
	channels int
	skip     int // samples per channel still to drop

	pcm     []float32
	pending []float32
}

func newSource(dec packetDecoder, t track) *source {
	return &source{
		dec:      dec,
		packets:  t.packets,
		channels: t.head.Channels,
		skip:     t.head.PreSkip,
		pcm:      make([]float32, maxFrame*t.head.Channels),
	}
}

func (s *source) SampleRate() int { return opus.SampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return maxFrame * s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	dst = dst[:len(dst)-len(dst)%s.channels]
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if len(s.packets) == 0 {
				return written, io.EOF
			}
			if err := s.decodeNext(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	return written, nil
}

func (s *source) decodeNext() error {
	pkt := s.packets[0]
	s.packets = s.packets[1:]

	// DecodeFloat32 counts samples per channel
	n, err := s.dec.DecodeFloat32(pkt, s.pcm)
	if err != nil {
		return fmt.Errorf("opus packet: %w", err)
	}

	drop := min(s.skip, n)
	s.skip -= drop
	s.pending = s.pcm[drop*s.channels : n*s.channels]

	return nil
}
