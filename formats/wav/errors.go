// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only PCM WAV is supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")

	// ErrNotMono is returned by Encode for buffers with more than one channel.
	ErrNotMono           = errors.New("WAV encoder requires mono samples")
	ErrInvalidSampleRate = errors.New("invalid WAV sample rate")
	// ErrDataTooLarge means the data chunk does not fit the 32-bit RIFF size fields.
	ErrDataTooLarge = errors.New("WAV data too large")
)
