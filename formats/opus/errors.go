// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

var (
	ErrNotOpusStream       = errors.New("not an Ogg Opus stream")
	ErrUnsupportedChannels = errors.New("unsupported Opus channel count")
)
