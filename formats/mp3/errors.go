// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMp3Stream is returned when go-mp3 cannot find a valid frame header.
var ErrNotMp3Stream = errors.New("not an MP3 stream")
