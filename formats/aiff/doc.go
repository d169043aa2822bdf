// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and uncompressed AIFF-C files through
// github.com/go-audio/aiff.
//
// Integer PCM at 8, 16, 24 or 32 bits is supported with any channel count
// and sample rate. Samples come out of the audio.Source as float32 in
// [-1, 1], scaled by the bit depth:
//
//	src, err := aiff.Decoder{}.Decode(f)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not a FORM/AIFF stream
//	}
//
// The whole input is buffered because go-audio needs to seek.
package aiff
