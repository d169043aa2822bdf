// SPDX-License-Identifier: EPL-2.0

package webm

import "errors"

var (
	ErrNotWebmStream    = errors.New("not a WebM/Matroska stream")
	ErrNoAudioTrack     = errors.New("no audio track")
	ErrUnsupportedCodec = errors.New("unsupported WebM audio codec")
)
