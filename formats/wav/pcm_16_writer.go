// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be
// already quantized. The header matches the one produced by Encode; the
// data is streamed in fixed-size chunks.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if err := checkLayout(sampleRate, len(samples)); err != nil {
		return err
	}

	var header [HeaderSize]byte
	putHeader(header[:], sampleRate, uint32(len(samples)*bytesPerFrame))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	const chunkSize = 8192 // samples per write

	buf := make([]byte, min(len(samples), chunkSize)*bytesPerFrame)

	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		buf = buf[:len(chunk)*bytesPerFrame]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
