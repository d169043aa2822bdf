// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written by this
// package: RIFF descriptor, a 16-byte fmt chunk and the data chunk header.
const HeaderSize = 44

const (
	formatPCM     = 1
	bitsPerSample = 16
	bytesPerFrame = bitsPerSample / 8 // mono

	// largest sample count whose RIFF size (36 + N*2) still fits in 32 bits
	maxSamples = (math.MaxUint32 - (HeaderSize - 8)) / bytesPerFrame
)

// Header mirrors the fields of a canonical 44-byte WAV header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// Frames returns the number of sample frames in the data chunk.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / int(h.BlockAlign)
}

func (h Header) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.Frames()) * time.Second / time.Duration(h.SampleRate)
}

// ParseHeader reads a canonical 44-byte header: RIFF/WAVE, a 16-byte "fmt "
// chunk immediately followed by "data". Files with extra chunks are valid WAV
// but are rejected here with ErrUnsupportedWavLayout; use Decoder for those.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < 12 || !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header truncated at %d bytes", ErrUnsupportedWavLayout, len(b))
	}
	if !bytes.Equal(b[12:16], []byte("fmt ")) || binary.LittleEndian.Uint32(b[16:20]) != 16 {
		return Header{}, fmt.Errorf("%w: fmt chunk not canonical", ErrUnsupportedWavLayout)
	}
	if !bytes.Equal(b[36:40], []byte("data")) {
		return Header{}, fmt.Errorf("%w: data chunk not at offset 36", ErrUnsupportedWavLayout)
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}

func checkLayout(sampleRate, samples int) error {
	if samples > maxSamples {
		return fmt.Errorf("%w: %d samples", ErrDataTooLarge, samples)
	}
	if sampleRate <= 0 || int64(sampleRate)*bytesPerFrame > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// putHeader writes the mono 16-bit PCM header into header[:HeaderSize].
// Callers validate sampleRate and dataSize with checkLayout first.
func putHeader(header []byte, sampleRate int, dataSize uint32) {
	// RIFF descriptor
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatPCM)
	binary.LittleEndian.PutUint16(header[22:24], 1)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate)*bytesPerFrame)
	binary.LittleEndian.PutUint16(header[32:34], bytesPerFrame)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
}
