// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams through github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit stereo, so the returned audio.Source reports two
// channels even for mono files; the render stage averages them back.
//
//	src, err := mp3.Decoder{}.Decode(f)
//	if errors.Is(err, mp3.ErrNotMp3Stream) {
//	    // no MPEG frame found
//	}
package mp3
