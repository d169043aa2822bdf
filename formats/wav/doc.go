// SPDX-License-Identifier: EPL-2.0

// Package wav reads RIFF/WAVE files and writes the canonical 44-byte-header
// mono 16-bit PCM layout.
//
// # Encoding
//
// Encode turns a mono audio.SampleBuffer into a Buffer, a complete WAV file
// image:
//
//	out, err := wav.Encode(buf)
//	if err != nil {
//	    // ErrNotMono, ErrInvalidSampleRate or audio.ErrAllocationFailure
//	}
//	_, err = out.WriteTo(f)
//
// Samples are clamped to [-1, 1], then negative values are scaled by 32768 and
// the rest by 32767, truncating toward zero. The header is always:
//
//	offset  size  field          value
//	0       4     ChunkID        "RIFF"
//	4       4     ChunkSize      36 + N*2
//	8       4     Format         "WAVE"
//	12      4     Subchunk1ID    "fmt "
//	16      4     Subchunk1Size  16
//	20      2     AudioFormat    1 (PCM)
//	22      2     NumChannels    1
//	24      4     SampleRate     rate
//	28      4     ByteRate       rate*2
//	32      2     BlockAlign     2
//	34      2     BitsPerSample  16
//	36      4     Subchunk2ID    "data"
//	40      4     Subchunk2Size  N*2
//
// WriteWAV16 streams the same layout for samples that are already int16.
// ParseHeader and Buffer.PCM read it back.
//
// # Decoding
//
// Decoder parses arbitrary WAV files through github.com/go-audio/wav: PCM at
// 16, 24 or 32 bits, any channel count, WAVE_FORMAT_EXTENSIBLE included.
// Chunks other than fmt and data are skipped. The returned audio.Source yields
// float32 samples in [-1, 1].
package wav
