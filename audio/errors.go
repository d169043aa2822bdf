// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidChannels   = errors.New("channel count must be positive")
	ErrPartialFrame      = errors.New("sample count is not a multiple of channels")
	ErrUnknownMethod     = errors.New("unknown resampling method")

	// ErrDecodeFailure marks input that could not be interpreted as audio.
	ErrDecodeFailure = errors.New("decode failure")
	// ErrRenderFailure marks a failure to down-mix or resample decoded audio.
	ErrRenderFailure = errors.New("render failure")
	// ErrAllocationFailure marks an output that cannot be allocated or
	// represented.
	ErrAllocationFailure = errors.New("allocation failure")
)
