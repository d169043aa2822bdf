// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis through github.com/jfreymuth/oggvorbis.
// It is registered under the "ogg" key.
//
// The decoder streams: nothing beyond the current Ogg page is buffered, and
// samples come out as interleaved float32 in the stream's channel order.
package vorbis
