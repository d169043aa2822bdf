// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
)

// WAV16 builds a 16-bit PCM WAV file of any channel count from interleaved
// samples in [-1, 1].
func WAV16(sampleRate, channels int, samples []float32) []byte {
	dataSize := len(samples) * 2
	out := make([]byte, 44+dataSize)

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+dataSize))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1)
	binary.LittleEndian.PutUint16(out[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(sampleRate*channels*2))
	binary.LittleEndian.PutUint16(out[32:34], uint16(channels*2))
	binary.LittleEndian.PutUint16(out[34:36], 16)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(dataSize))

	for i, s := range samples {
		v := int16(math.Max(-1, math.Min(1, float64(s))) * 32767)
		binary.LittleEndian.PutUint16(out[44+i*2:], uint16(v))
	}

	return out
}

// SineWAV16 returns frames of a sine tone on every channel as a WAV file.
func SineWAV16(sampleRate, channels, frames int, frequency float64) []byte {
	samples := make([]float32, frames*channels)
	for f := range frames {
		v := float32(0.5 * math.Sin(2*math.Pi*frequency*float64(f)/float64(sampleRate)))
		for ch := range channels {
			samples[f*channels+ch] = v
		}
	}
	return WAV16(sampleRate, channels, samples)
}
