// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/utils"
)

// Buffer is a complete WAV file image: a HeaderSize-byte header followed by
// 16-bit little-endian mono PCM. Buffers returned by Encode are never
// modified afterwards.
type Buffer []byte

// Encode quantizes a mono SampleBuffer to 16-bit PCM and wraps it in a
// canonical WAV header. Samples are clamped to [-1, 1] before scaling; see
// utils.Float32ToInt16.
//
// Encode is deterministic: the same buffer always produces the same bytes.
// It fails with ErrNotMono, ErrInvalidSampleRate or, when the data chunk
// would overflow the 32-bit size fields, ErrDataTooLarge wrapped in
// audio.ErrAllocationFailure.
func Encode(buf audio.SampleBuffer) (Buffer, error) {
	if buf.Channels != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrNotMono, buf.Channels)
	}

	n := len(buf.Samples)
	if err := checkLayout(buf.SampleRate, n); err != nil {
		if errors.Is(err, ErrDataTooLarge) {
			return nil, fmt.Errorf("%w: %w", audio.ErrAllocationFailure, err)
		}
		return nil, err
	}

	out := make(Buffer, HeaderSize+n*bytesPerFrame)
	putHeader(out, buf.SampleRate, uint32(n*bytesPerFrame))

	pcm := out[HeaderSize:]
	for i, s := range buf.Samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(utils.Float32ToInt16(s)))
	}

	return out, nil
}

// Header parses the buffer's header.
func (b Buffer) Header() (Header, error) {
	return ParseHeader(b)
}

// PCM decodes the data chunk into samples.
func (b Buffer) PCM() ([]int16, error) {
	h, err := b.Header()
	if err != nil {
		return nil, err
	}
	if h.BitsPerSample != bitsPerSample {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, h.BitsPerSample)
	}

	end := HeaderSize + int64(h.DataSize)
	if end > int64(len(b)) {
		return nil, fmt.Errorf("%w: data chunk truncated", ErrUnsupportedWavLayout)
	}

	data := b[HeaderSize:end]
	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return samples, nil
}

// WriteTo implements io.WriterTo.
func (b Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b)
	if err != nil {
		return int64(n), fmt.Errorf("%w", err)
	}
	return int64(n), nil
}
